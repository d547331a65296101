//go:build !gtxt

package main

import "log/slog"
import "path/filepath"

import "github.com/fsnotify/fsnotify"

// Watches the scene file and sends every successfully decoded version
// through the returned channel. Decoding errors are logged and the
// previous scene is kept. Call the returned function to stop watching.
func watchScene(path string, logger *slog.Logger) (<-chan *Scene, func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil { return nil, nil, err }

	// editors often replace files on save, so the directory is watched
	err = watcher.Add(filepath.Dir(path))
	if err != nil {
		watcher.Close()
		return nil, nil, err
	}

	scenes := make(chan *Scene, 1)
	target := filepath.Clean(path)
	go func() {
		defer close(scenes)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok { return }
				if filepath.Clean(event.Name) != target { continue }
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) { continue }
				scene, err := LoadScene(path)
				if err != nil {
					logger.Warn("scene reload failed", slog.Any("err", err))
					continue
				}
				select { // keep only the latest scene
				case <-scenes:
				default:
				}
				scenes <- scene
				logger.Info("scene reloaded", slog.String("path", path))
			case err, ok := <-watcher.Errors:
				if !ok { return }
				logger.Warn("scene watcher error", slog.Any("err", err))
			}
		}
	}()
	return scenes, watcher.Close, nil
}
