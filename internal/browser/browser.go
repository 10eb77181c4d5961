package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Open launches url in the system default browser. The handler process is
// started and not waited on.
func Open(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing scheme or host", raw)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", raw)
	case "linux":
		cmd = exec.Command("xdg-open", raw)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", raw)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// OpenAll opens every URL in order and returns how many launched
// successfully. Failures do not stop the iteration.
func OpenAll(urls []string) int {
	opened := 0
	for _, u := range urls {
		if err := Open(u); err == nil {
			opened++
		}
	}
	return opened
}
