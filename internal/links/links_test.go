package links

import (
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want Collection
	}{
		{
			name: "duplicates removed and sorted",
			in:   []string{"https://x.com", "https://a.com", "https://x.com"},
			want: Collection{"https://a.com", "https://x.com"},
		},
		{
			name: "empty strings dropped",
			in:   []string{"", "https://a.com", ""},
			want: Collection{"https://a.com"},
		},
		{
			name: "nil input",
			in:   nil,
			want: Collection{},
		},
		{
			name: "exact equality, no normalization",
			in:   []string{"https://a.com", "https://a.com/", "HTTPS://A.COM"},
			want: Collection{"HTTPS://A.COM", "https://a.com", "https://a.com/"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Dedupe(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	c := Collection{"https://a.com", "https://b.com/Docs", "https://c.org"}

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: []string{"https://a.com", "https://b.com/Docs", "https://c.org"}},
		{name: "substring match", query: ".com", want: []string{"https://a.com", "https://b.com/Docs"}},
		{name: "case insensitive", query: "DOCS", want: []string{"https://b.com/Docs"}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Filter(tc.query)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	c := Collection{"https://a.com", "https://b.com"}
	before := make(Collection, len(c))
	copy(before, c)

	_ = c.Filter("a")
	if !reflect.DeepEqual(c, before) {
		t.Fatalf("collection mutated by Filter: %v", c)
	}
}

func TestContains(t *testing.T) {
	c := Dedupe([]string{"https://a.com", "https://b.com"})
	if !c.Contains("https://a.com") {
		t.Error("expected Contains to find https://a.com")
	}
	if c.Contains("https://z.com") {
		t.Error("did not expect Contains to find https://z.com")
	}
}
