package browser

import "testing"

func TestOpenRejectsInvalidURLs(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "not a url", url: "not a url"},
		{name: "relative", url: "/just/a/path"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Open(tc.url); err == nil {
				t.Fatalf("expected error for %q", tc.url)
			}
		})
	}
}
