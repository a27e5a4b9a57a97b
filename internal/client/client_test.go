package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

func testLogger() *log.Logger {
	l := log.New(os.Stderr)
	l.SetLevel(log.FatalLevel)
	return l
}

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]string
}

func newTestServer(t *testing.T, habits string) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		requests = append(requests, rec)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"habits":` + habits + `}`))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, testLogger()), &requests
}

func TestFetchAll(t *testing.T) {
	c, _ := newTestServer(t, `{"Read":{"color":"#39d353","dates":{"2025-01-02":true,"2025-01-03":false}}}`)

	col, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	h, ok := col["Read"]
	if !ok {
		t.Fatal("habit Read missing from collection")
	}
	if h.Color != "#39d353" {
		t.Errorf("color = %q", h.Color)
	}
	if !h.DoneOn("2025-01-02") {
		t.Error("2025-01-02 should be done")
	}
	if h.DoneOn("2025-01-03") {
		t.Error("2025-01-03 was toggled off, should not be done")
	}
}

func TestFetchAllFailureReturnsEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	col, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error from failing server")
	}
	if col == nil {
		t.Fatal("collection must be non-nil so rendering can proceed")
	}
	if len(col) != 0 {
		t.Errorf("collection should be empty, got %d entries", len(col))
	}
}

func TestFetchAllUnreachableServer(t *testing.T) {
	c := New("http://127.0.0.1:1", testLogger())
	col, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if len(col) != 0 {
		t.Errorf("collection should be empty, got %d entries", len(col))
	}
}

func TestToggleSendsExactWireFields(t *testing.T) {
	c, reqs := newTestServer(t, `{}`)

	if err := c.Toggle(context.Background(), "Read", "2025-06-01"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if len(*reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*reqs))
	}
	r := (*reqs)[0]
	if r.Path != "/api/habits" || r.Method != http.MethodPost {
		t.Errorf("request was %s %s", r.Method, r.Path)
	}
	if r.Body["habit"] != "Read" || r.Body["date"] != "2025-06-01" {
		t.Errorf("body = %v", r.Body)
	}
}

func TestRenameNoOpIssuesNoRequest(t *testing.T) {
	c, reqs := newTestServer(t, `{}`)

	if err := c.Rename(context.Background(), "Read", "Read"); err != nil {
		t.Fatalf("Rename same name: %v", err)
	}
	if err := c.Rename(context.Background(), "Read", ""); err != nil {
		t.Fatalf("Rename empty name: %v", err)
	}
	if err := c.Rename(context.Background(), "Read", "   "); err != nil {
		t.Fatalf("Rename blank name: %v", err)
	}
	if len(*reqs) != 0 {
		t.Fatalf("no-op renames issued %d requests", len(*reqs))
	}

	if err := c.Rename(context.Background(), "Read", "Study"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if len(*reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*reqs))
	}
	r := (*reqs)[0]
	if r.Path != "/api/habits/rename" || r.Body["old"] != "Read" || r.Body["new"] != "Study" {
		t.Errorf("request = %s %v", r.Path, r.Body)
	}
}

func TestRecolorRejectsInvalidHexWithoutRequest(t *testing.T) {
	c, reqs := newTestServer(t, `{}`)

	for _, bad := range []string{"", "red", "#39d35", "#gggggg"} {
		if err := c.Recolor(context.Background(), "Read", bad); err == nil {
			t.Errorf("Recolor(%q) should fail", bad)
		}
	}
	if len(*reqs) != 0 {
		t.Fatalf("invalid colors issued %d requests", len(*reqs))
	}

	if err := c.Recolor(context.Background(), "Read", "#ff0000"); err != nil {
		t.Fatalf("Recolor: %v", err)
	}
	r := (*reqs)[0]
	if r.Path != "/api/habits/color" || r.Body["habit"] != "Read" || r.Body["color"] != "#ff0000" {
		t.Errorf("request = %s %v", r.Path, r.Body)
	}
}

func TestCreateAndDeleteEndpoints(t *testing.T) {
	c, reqs := newTestServer(t, `{}`)

	if err := c.Create(context.Background(), "Run"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := c.Delete(context.Background(), "Run"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if (*reqs)[0].Path != "/api/habits/new" || (*reqs)[0].Body["habit"] != "Run" {
		t.Errorf("create request = %v", (*reqs)[0])
	}
	if (*reqs)[1].Path != "/api/habits/delete" || (*reqs)[1].Body["habit"] != "Run" {
		t.Errorf("delete request = %v", (*reqs)[1])
	}
}

func TestMotivation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/motivation" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"motivation":"Keep going!"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	msg, err := c.Motivation(context.Background())
	if err != nil {
		t.Fatalf("Motivation: %v", err)
	}
	if msg != "Keep going!" {
		t.Errorf("motivation = %q", msg)
	}
}
