package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchTVReturnsFirstResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/tv" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "SmackDown" {
			t.Errorf("query = %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":16764,"name":"WWE SmackDown","first_air_date":"1999-04-29"},{"id":1,"name":"Other"}]}`))
	}))
	defer server.Close()

	client, err := New("test-key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	match, err := client.SearchTV(context.Background(), "SmackDown")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Title != "WWE SmackDown" || match.Year != 1999 || match.ID != 16764 {
		t.Errorf("match = %+v", match)
	}
}

func TestSearchMoviePassesYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("year"); got != "1995" {
			t.Errorf("year = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":949,"title":"Heat","release_date":"1995-12-15"}]}`))
	}))
	defer server.Close()

	client, err := New("test-key", server.URL, "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	match, err := client.SearchMovie(context.Background(), "Heat", 1995)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if match == nil || match.Title != "Heat" || match.Year != 1995 {
		t.Errorf("match = %+v", match)
	}
}

func TestSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client, err := New("test-key", server.URL, "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	match, err := client.SearchTV(context.Background(), "Nothing")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if match != nil {
		t.Errorf("expected nil match, got %+v", match)
	}
}

func TestSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := New("bad-key", server.URL, "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.SearchTV(context.Background(), "Anything"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestNewRequiresKeyAndURL(t *testing.T) {
	if _, err := New("", "https://example.com", ""); err == nil {
		t.Error("expected error for missing api key")
	}
	if _, err := New("key", "", ""); err == nil {
		t.Error("expected error for missing base url")
	}
}
