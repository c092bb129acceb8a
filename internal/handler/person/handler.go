package person

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/persons/backend/internal/model/person"
	"github.com/zhouzirui/persons/backend/internal/service/feed"
	"github.com/zhouzirui/persons/backend/pkg/utils"
)

// Diagnostic bodies returned to clients.
const (
	MsgInvalidJSON   = "JSON inválido"
	MsgInvalidID     = "ID inválido"
	MsgNotFound      = "Pessoa não encontrada"
	MsgRouteNotFound = "Rota não encontrada"
	MsgDeleted       = "Pessoa removida"
)

// ErrInvalidID is returned when a path token is not an unsigned 64-bit integer.
var ErrInvalidID = errors.New("invalid person id")

// Handler person服务的HTTP处理器
type Handler struct {
	store  person.Store
	events feed.Publisher
}

// New 创建person处理器；events 为 nil 时不发布变更事件
func New(store person.Store, events feed.Publisher) *Handler {
	return &Handler{
		store:  store,
		events: events,
	}
}

// RegisterRoutes 注册person相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/persons", h.handleCreate)
	r.Get("/persons", h.handleList)
	r.Get("/persons/*", h.handleGet)
	r.Put("/persons/*", h.handleUpdate)
	r.Delete("/persons/*", h.handleDelete)
}

// handleCreate 创建person，客户端提交的id会被忽略
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	draft, ok := readPerson(w, r)
	if !ok {
		return
	}

	created := h.store.Create(draft)
	h.publish(feed.PersonCreated, created)
	respondPerson(w, created)
}

// handleList 列出所有person
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	body, err := person.EncodePersons(h.store.List())
	if err != nil {
		log.Printf("[persons] encode list: %v", err)
		utils.RespondError(w)
		return
	}
	utils.RespondJSON(w, http.StatusOK, body)
}

// handleGet 按id查询person
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, ok := h.store.Get(id)
	if !ok {
		utils.RespondText(w, http.StatusNotFound, MsgNotFound)
		return
	}
	respondPerson(w, found)
}

// handleUpdate 更新name和age，id保持不变
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patch, ok := readPerson(w, r)
	if !ok {
		return
	}

	updated, ok := h.store.Update(id, patch)
	if !ok {
		utils.RespondText(w, http.StatusNotFound, MsgNotFound)
		return
	}
	h.publish(feed.PersonUpdated, updated)
	respondPerson(w, updated)
}

// handleDelete 删除person
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.store.Delete(id) {
		utils.RespondText(w, http.StatusNotFound, MsgNotFound)
		return
	}
	h.publish(feed.PersonDeleted, person.Person{ID: id})
	utils.RespondText(w, http.StatusOK, MsgDeleted)
}

// RouteNotFound answers every unmatched method/path pair.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondText(w, http.StatusNotFound, MsgRouteNotFound)
}

func (h *Handler) publish(kind string, p person.Person) {
	if h.events == nil {
		return
	}
	h.events.Publish(kind, p)
}

// ParseID parses the token that follows /persons/. An optional leading '+' is accepted.
func ParseID(token string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidID, err)
	}
	return id, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := ParseID(chi.URLParam(r, "*"))
	if err != nil {
		utils.RespondText(w, http.StatusBadRequest, MsgInvalidID)
		return 0, false
	}
	return id, true
}

// readPerson consumes the whole body before any store access.
func readPerson(w http.ResponseWriter, r *http.Request) (person.Person, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[persons] read body: %v", err)
		utils.RespondText(w, http.StatusBadRequest, MsgInvalidJSON)
		return person.Person{}, false
	}

	p, err := person.DecodePerson(body)
	if err != nil {
		utils.RespondText(w, http.StatusBadRequest, MsgInvalidJSON)
		return person.Person{}, false
	}
	return p, true
}

func respondPerson(w http.ResponseWriter, p person.Person) {
	body, err := person.EncodePerson(p)
	if err != nil {
		log.Printf("[persons] encode person %d: %v", p.ID, err)
		utils.RespondError(w)
		return
	}
	utils.RespondJSON(w, http.StatusOK, body)
}
