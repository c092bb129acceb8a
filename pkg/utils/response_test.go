package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSONWritesBodyVerbatim(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, []byte(`{"id":1}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
	if rec.Body.String() != `{"id":1}` {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestRespondText(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondText(rec, http.StatusNotFound, "Rota não encontrada")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "Rota não encontrada" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestSendSSEEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := SendSSEEvent(rec, rec, "person.created", map[string]int{"id": 1}); err != nil {
		t.Fatalf("SendSSEEvent err: %v", err)
	}
	want := "event: person.created\ndata: {\"id\":1}\n\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected frame %q", rec.Body.String())
	}
	if !rec.Flushed {
		t.Fatal("expected flush")
	}
}
