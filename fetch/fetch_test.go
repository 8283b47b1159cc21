package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const fixturePage = `<html><body>
<table class="wikitable">
	<tr><th>Road type</th><th>Filter</th></tr>
	<tr><td>motorway</td><td>highway=motorway</td></tr>
</table>
<table class="wikitable">
	<tr><th>Country</th><th>Road type</th><th>(default)</th></tr>
	<tr><td>France</td><td></td><td>90</td></tr>
</table>
<table class="wikitable">
	<tr><th>Country</th><th>Road type</th><th>(default)</th></tr>
	<tr><td>Germany</td><td>urban</td><td>50</td></tr>
</table>
<table class="wikitable">
	<tr><th>Something else</th></tr>
	<tr><td>ignored</td></tr>
</table>
<table>
	<tr><th>Country</th></tr>
	<tr><td>not a wikitable, ignored</td></tr>
</table>
</body></html>`

func TestClassify(t *testing.T) {
	tables, err := Classify(strings.NewReader(fixturePage))
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}

	if tables.RoadTypes == nil {
		t.Fatal("RoadTypes table not found")
	}
	if got := len(tables.Speeds); got != 2 {
		t.Fatalf("len(Speeds) = %d, want 2", got)
	}

	// Document order is preserved.
	if text := tables.Speeds[0].Text(); !strings.Contains(text, "France") {
		t.Errorf("Speeds[0] = %q, want the France table first", text)
	}
}

func TestClassify_NoTables(t *testing.T) {
	_, err := Classify(strings.NewReader(`<html><body><p>nothing here</p></body></html>`))
	if err == nil {
		t.Error("Classify() expected error for a page without tables")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixturePage))
	}))
	defer srv.Close()

	tables, err := NewClient().WithURL(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if tables.RoadTypes == nil || len(tables.Speeds) != 2 {
		t.Errorf("Fetch() classified %v speed tables, want road types plus 2", len(tables.Speeds))
	}
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewClient().WithURL(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("Fetch() expected error for 404 response")
	}
}
