package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/coldpitch/coldpitch/internal/model"
	"github.com/coldpitch/coldpitch/internal/service"
	"github.com/coldpitch/coldpitch/internal/store"
)

func newUserRouter(t *testing.T) (http.Handler, store.UserStore) {
	t.Helper()
	s := store.NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	svc := service.NewEmailService(s, &stubProvider{output: "x"}, &stubEnricher{}, nil)
	h := NewUserHandler(svc, discardLogger())

	r := chi.NewRouter()
	r.Get("/api/user/{email}", h.Get)
	return r, s
}

func TestUserGet_UnknownEmailReturnsDefault(t *testing.T) {
	router, _ := newUserRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/nobody@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool        `json:"success"`
		User    *model.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !resp.Success || resp.User == nil {
		t.Fatalf("unexpected response %s", rec.Body.String())
	}
	if resp.User.Plan != model.PlanFree || resp.User.Credits != model.DefaultFreeCredits {
		t.Errorf("expected default record, got %+v", resp.User)
	}
}

func TestUserGet_KnownEmailReturnsRecord(t *testing.T) {
	router, userStore := newUserRouter(t)

	starter := model.PlanStarter
	credits := 42
	if _, err := userStore.Update(context.Background(), "known@example.com", store.UserPatch{Plan: &starter, Credits: &credits}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/known@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		User *model.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.User.Plan != model.PlanStarter || resp.User.Credits != 42 {
		t.Errorf("unexpected record %+v", resp.User)
	}
}
