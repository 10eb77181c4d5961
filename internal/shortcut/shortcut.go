package shortcut

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Shortcut files are small key=value text files, conventionally with a .url
// extension and an [InternetShortcut] section header:
//
//	[InternetShortcut]
//	URL=https://example.com
//
// Only the URL key matters; everything else is ignored.

const urlKey = "URL="

// ExtractURL reads a shortcut file and returns the value of its URL= line.
// It returns an error if the file cannot be read or holds no usable URL;
// callers scanning a folder treat that as skip-this-file, not fatal.
func ExtractURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if !strings.HasPrefix(line, urlKey) {
			continue
		}
		u := strings.TrimSpace(line[len(urlKey):])
		if u == "" {
			return "", fmt.Errorf("%s: empty URL value", path)
		}
		return u, nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%s: no URL entry", path)
}
