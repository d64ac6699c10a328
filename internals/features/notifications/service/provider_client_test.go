package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSendPostsJSONOnce(t *testing.T) {
	var calls int32
	var got map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL)
	err := client.Send(context.Background(), map[string]string{"to": "a@b.c"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if calls != 1 {
		t.Fatalf("provider called %d times, want exactly 1", calls)
	}
	if got["to"] != "a@b.c" {
		t.Fatalf("payload = %v", got)
	}
}

func TestSendProviderErrorNoRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "template not found", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL)
	err := client.Send(context.Background(), map[string]string{})
	if err == nil {
		t.Fatal("want error on provider 4xx")
	}
	if calls != 1 {
		t.Fatalf("provider called %d times, want exactly 1 (no retry)", calls)
	}
}

func TestSendUnconfigured(t *testing.T) {
	client := NewProviderClient("")
	err := client.Send(context.Background(), map[string]string{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
