package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arsipku/internal/gateway"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

func TestClient_NotConfigured(t *testing.T) {
	c := gateway.NewClient("", "")
	if _, err := c.ListArchives(context.Background()); !errors.Is(err, gateway.ErrNotConfigured) {
		t.Fatalf("ListArchives error = %v, want ErrNotConfigured", err)
	}
	if err := c.Subscribe(context.Background(), nil); !errors.Is(err, gateway.ErrNotConfigured) {
		t.Fatalf("Subscribe error = %v, want ErrNotConfigured", err)
	}
}

func TestClient_SignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/signin" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(gateway.Session{Token: "tok-1", Email: req.Email, CreatedAt: time.Now()})
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "")
	session, err := c.SignIn(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn error = %v", err)
	}
	if session.Token != "tok-1" {
		t.Errorf("SignIn token = %s", session.Token)
	}
	if c.APIKey != "tok-1" {
		t.Errorf("SignIn did not store token, APIKey = %s", c.APIKey)
	}

	_, err = c.SignIn(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, gateway.ErrUnauthorized) {
		t.Fatalf("SignIn error = %v, want ErrUnauthorized", err)
	}
}

func TestClient_ListArchives_AllPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
			t.Errorf("Authorization = %s", got)
		}
		page := r.URL.Query().Get("page")
		result := service.SearchResult{TotalPages: 2}
		switch page {
		case "1":
			result.Page = 1
			result.Items = []model.Archive{{ID: "a-1"}, {ID: "a-2"}}
		case "2":
			result.Page = 2
			result.Items = []model.Archive{{ID: "a-3"}}
		default:
			t.Errorf("unexpected page %q", page)
		}
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "key-1")
	items, err := c.ListArchives(context.Background())
	if err != nil {
		t.Fatalf("ListArchives error = %v", err)
	}
	if len(items) != 3 || items[2].ID != "a-3" {
		t.Errorf("ListArchives items = %+v", items)
	}
}

func TestClient_CreateArchive_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Duplicate record"})
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "key-1")
	_, err := c.CreateArchive(context.Background(), service.ArchiveDraft{Subject: "x"})
	if !errors.Is(err, gateway.ErrConflict) {
		t.Fatalf("CreateArchive error = %v, want ErrConflict", err)
	}
}

func TestClient_DeleteArchive_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Resource not found"})
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "key-1")
	if err := c.DeleteArchive(context.Background(), "missing"); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("DeleteArchive error = %v, want ErrNotFound", err)
	}
}

func TestClient_Subscribe(t *testing.T) {
	ev, err := model.NewEvent(model.EventInsert, model.TableArchives, model.Archive{ID: "a-1"}, nil)
	if err != nil {
		t.Fatalf("NewEvent error = %v", err)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, ": keep-alive\n\n")
		fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
	}))
	defer srv.Close()

	var got []model.Event
	c := gateway.NewClient(srv.URL, "key-1")
	err = c.Subscribe(context.Background(), func(ev model.Event) error {
		got = append(got, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe error = %v", err)
	}
	if len(got) != 1 || got[0].Type != model.EventInsert || got[0].Table != model.TableArchives {
		t.Errorf("Subscribe events = %+v", got)
	}
}
