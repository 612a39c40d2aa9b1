package artwork

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetcher_Fetch(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0} // jpeg magic
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	fetcher := NewFetcher(time.Second)
	data, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Expected %v, got %v", payload, data)
	}
}

func TestFetcher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewFetcher(time.Second)
	if _, err := fetcher.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Expected error for 404 response, got nil")
	}
}

func TestFetcher_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	fetcher := NewFetcher(time.Second)
	if _, err := fetcher.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Expected error for refused connection, got nil")
	}
}
