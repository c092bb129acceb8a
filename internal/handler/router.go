package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/persons/backend/internal/handler/events"
	"github.com/zhouzirui/persons/backend/internal/handler/person"
	middlewarePkg "github.com/zhouzirui/persons/backend/internal/middleware"
	personModel "github.com/zhouzirui/persons/backend/internal/model/person"
	"github.com/zhouzirui/persons/backend/internal/service/feed"
)

// Options tunes the router beyond its core collaborators.
type Options struct {
	CORSOrigins []string
}

// NewRouter wires HTTP routes to the person store. A nil hub disables the change feed.
func NewRouter(persons personModel.Store, hub *feed.Hub, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(opts.CORSOrigins))

	r.NotFound(person.RouteNotFound)
	r.MethodNotAllowed(person.RouteNotFound)

	var publisher feed.Publisher
	if hub != nil {
		publisher = hub
	}
	person.New(persons, publisher).RegisterRoutes(r)

	if hub != nil {
		events.New(hub).RegisterRoutes(r)
	}

	return r
}
