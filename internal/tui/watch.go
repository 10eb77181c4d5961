package tui

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/user/linkman/internal/importer"
)

// watchFolders blocks until a shortcut file changes in either panel's folder
// and reports which panel needs a re-import. The Update loop re-issues the
// command after handling the message.
func (m model) watchFolders() tea.Cmd {
	folders := make(map[string]int)
	for i := range m.panels {
		if f := m.panels[i].folder; f != "" {
			folders[filepath.Clean(f)] = i
		}
	}
	if len(folders) == 0 {
		return nil
	}
	pattern := strings.ToLower(m.cfg.Import.Pattern)
	if pattern == "" {
		pattern = importer.DefaultPattern
	}
	gen := m.watchGen

	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return watchErrorMsg{err: err, gen: gen}
		}
		defer watcher.Close()

		for f := range folders {
			if err := watcher.Add(f); err != nil {
				return watchErrorMsg{err: err, gen: gen}
			}
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				name := strings.ToLower(filepath.Base(event.Name))
				if matched, _ := doublestar.Match(pattern, name); !matched {
					continue
				}
				if idx, ok := folders[filepath.Dir(filepath.Clean(event.Name))]; ok {
					return folderChangedMsg{panel: idx, gen: gen}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrorMsg{err: err, gen: gen}
			}
		}
	}
}
