package netx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Name   string   `json:"name"`
	Titles []string `json:"titles"`
}

func TestGetJSON(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotAccept string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAccept = r.Header.Get("Accept")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Arya Stark","titles":["Princess"],"born":"In 289 AC"}`))
		}))
		defer ts.Close()

		var p payload
		if err := GetJSON(context.Background(), ts.Client(), ts.URL, &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotAccept != "application/json" {
			t.Fatalf("Accept = %q, want application/json", gotAccept)
		}
		if p.Name != "Arya Stark" || len(p.Titles) != 1 || p.Titles[0] != "Princess" {
			t.Fatalf("decoded = %+v", p)
		}
	})

	t.Run("non-2xx -> ErrUnexpectedStatus", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no such character"))
		}))
		defer ts.Close()

		err := GetJSON(context.Background(), ts.Client(), ts.URL, &payload{})
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("error = %v, want ErrUnexpectedStatus", err)
		}
		if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "no such character") {
			t.Fatalf("error = %q, want status and body", err.Error())
		}
	})

	t.Run("bad body -> ErrDecode", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer ts.Close()

		err := GetJSON(context.Background(), ts.Client(), ts.URL, &payload{})
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("error = %v, want ErrDecode", err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		err := GetJSON(context.Background(), ts.Client(), ts.URL, &payload{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if errors.Is(err, ErrUnexpectedStatus) || errors.Is(err, ErrDecode) {
			t.Fatalf("got wrong kind of error: %v", err)
		}
	})

	t.Run("bad url", func(t *testing.T) {
		if err := GetJSON(context.Background(), http.DefaultClient, "://nope", &payload{}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
