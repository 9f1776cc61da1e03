package translate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"parlo/internal/translate"
)

func TestTranslateDecodesSegments(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["Hola, ","Hello, ",null,null],["mundo","world",null,null]],null,"en"]`))
	}))
	defer server.Close()

	client := translate.NewClient("es", translate.WithBaseURL(server.URL))
	got, err := client.Translate(context.Background(), "Hello, world")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hola, mundo" {
		t.Fatalf("Translate = %q, want %q", got, "Hola, mundo")
	}

	query := captured.URL.Query()
	if query.Get("sl") != "auto" || query.Get("tl") != "es" || query.Get("q") != "Hello, world" {
		t.Fatalf("unexpected query: %v", query)
	}
}

func TestTranslateBlankInput(t *testing.T) {
	client := translate.NewClient("es", translate.WithBaseURL("http://127.0.0.1:0"))
	got, err := client.Translate(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Translate blank: %v", err)
	}
	if got != "" {
		t.Fatalf("Translate blank = %q, want empty", got)
	}
}

func TestTranslateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := translate.NewClient("es", translate.WithBaseURL(server.URL))
	if _, err := client.Translate(context.Background(), "hola"); err == nil {
		t.Fatal("expected error on HTTP 429")
	}
}

func TestTranslateMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := translate.NewClient("es", translate.WithBaseURL(server.URL))
	if _, err := client.Translate(context.Background(), "hola"); err == nil {
		t.Fatal("expected error on malformed payload")
	}
}
