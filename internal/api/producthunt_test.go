package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nbox/ProductHunt-Statistic/internal/config"
	"github.com/nbox/ProductHunt-Statistic/internal/domain"
)

func testWindow() domain.TimeWindow {
	return domain.TimeWindow{Label: "05-03-2024", Year: "2024", Month: "03"}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *PHClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewPHClientWithEndpoint(&config.Config{Token: "test-token"}, server.URL)
}

func pageBody(names []string, hasNext bool, cursor string) map[string]any {
	edges := make([]map[string]any, len(names))
	for i, n := range names {
		edges[i] = map[string]any{"node": map[string]any{"name": n, "votesCount": i + 1}}
	}
	return map[string]any{
		"data": map[string]any{
			"posts": map[string]any{
				"pageInfo": map[string]any{"hasNextPage": hasNext, "endCursor": cursor},
				"edges":    edges,
			},
		},
	}
}

func TestFetchPostsForDay_Paginates(t *testing.T) {
	var requests []map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		requests = append(requests, req.Variables)

		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		if req.Variables["after"] == nil {
			json.NewEncoder(w).Encode(pageBody([]string{"a", "b"}, true, "CURSOR-1"))
			return
		}
		json.NewEncoder(w).Encode(pageBody([]string{"c"}, false, ""))
	})

	posts, err := client.FetchPostsForDay(context.Background(), testWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("expected 3 posts across pages, got %d", len(posts))
	}
	if posts[0].Name != "a" || posts[2].Name != "c" {
		t.Errorf("unexpected post order: %+v", posts)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 page requests, got %d", len(requests))
	}
	if requests[0]["after"] != nil {
		t.Errorf("first page should not carry a cursor, got %v", requests[0]["after"])
	}
	if requests[1]["after"] != "CURSOR-1" {
		t.Errorf("second page should carry the returned cursor, got %v", requests[1]["after"])
	}
	if got := requests[0]["first"]; got != float64(20) {
		t.Errorf("unexpected page size: %v", got)
	}
}

func TestFetchPostsForDay_StopsOnMissingCursor(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		// hasNextPage claims more, but no cursor came back.
		json.NewEncoder(w).Encode(pageBody([]string{"only"}, true, ""))
	})

	posts, err := client.FetchPostsForDay(context.Background(), testWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected the loop to terminate after 1 call, got %d", calls)
	}
	if len(posts) != 1 {
		t.Errorf("expected 1 post, got %d", len(posts))
	}
}

func TestFetchPostsForDay_GraphQLErrorsSurfaceVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": null, "errors": [{"message": "rate limited"}]}`))
	})

	_, err := client.FetchPostsForDay(context.Background(), testWindow())
	if err == nil {
		t.Fatal("expected error for errors payload")
	}

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if got := string(fetchErr.Payload); got != `[{"message": "rate limited"}]` {
		t.Errorf("upstream payload not preserved verbatim: %s", got)
	}
}

func TestFetchPostsForDay_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid token"}`))
	})

	_, err := client.FetchPostsForDay(context.Background(), testWindow())

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", fetchErr.Status)
	}
}
