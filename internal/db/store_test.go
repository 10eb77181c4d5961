package db

import (
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReplaceAndList(t *testing.T) {
	store := newTestStore(t)

	urls := []string{"https://a.com", "https://x.com"}
	if err := store.Replace(PanelLeft, "/tmp/bookmarks", urls); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	got, err := store.List(PanelLeft)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !reflect.DeepEqual([]string(got), urls) {
		t.Fatalf("got %v, want %v", got, urls)
	}

	// Other panel is untouched
	right, err := store.List(PanelRight)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(right) != 0 {
		t.Fatalf("expected empty right panel, got %v", right)
	}
}

func TestReplaceOverwritesWholesale(t *testing.T) {
	store := newTestStore(t)

	if err := store.Replace(PanelLeft, "/old", []string{"https://old.com"}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if err := store.Replace(PanelLeft, "/new", []string{"https://new.com"}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	got, err := store.List(PanelLeft)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{"https://new.com"}
	if !reflect.DeepEqual([]string(got), want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	folder, err := store.Folder(PanelLeft)
	if err != nil {
		t.Fatalf("Folder error: %v", err)
	}
	if folder != "/new" {
		t.Fatalf("folder = %q, want /new", folder)
	}
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)

	urls := []string{"https://a.com", "https://b.com/Docs", "https://c.org"}
	if err := store.Replace(PanelLeft, "/tmp", urls); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: urls},
		{name: "substring", query: ".com", want: []string{"https://a.com", "https://b.com/Docs"}},
		{name: "case insensitive", query: "DOCS", want: []string{"https://b.com/Docs"}},
		{name: "no match", query: "zzz", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.Search(PanelLeft, tc.query)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			if !reflect.DeepEqual([]string(got), tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	store := newTestStore(t)

	if err := store.Replace(PanelRight, "/tmp", []string{"https://a.com", "https://b.com"}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	n, err := store.Count(PanelRight)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
}

func TestMetadata(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetMetadata("missing")
	if err != nil {
		t.Fatalf("GetMetadata error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty value for missing key, got %q", got)
	}

	if err := store.SetMetadata("k", "v"); err != nil {
		t.Fatalf("SetMetadata error: %v", err)
	}
	got, err = store.GetMetadata("k")
	if err != nil {
		t.Fatalf("GetMetadata error: %v", err)
	}
	if got != "v" {
		t.Fatalf("got %q, want v", got)
	}

	// Replace records a last-import timestamp
	if err := store.Replace(PanelLeft, "/tmp", []string{"https://a.com"}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	ts, err := store.GetMetadata("last_import_at:" + PanelLeft)
	if err != nil {
		t.Fatalf("GetMetadata error: %v", err)
	}
	if ts == "" {
		t.Fatal("expected last_import_at metadata to be set")
	}
}
