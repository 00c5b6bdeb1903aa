package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type fileChangedMsg struct{}

type watchErrMsg struct {
	err error
}

// watchCmd waits for the next write, create or rename of path. The parent
// directory is watched because saves replace the file by rename.
func watchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return watchErrMsg{err: err}
		}
		defer watcher.Close()

		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return watchErrMsg{err: err}
		}

		for {
			select {
			case evt, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && isWatchedPath(evt.Name, path) {
					return fileChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func isWatchedPath(name, path string) bool {
	return filepath.Clean(name) == filepath.Clean(path)
}
