// Package watcher re-runs the conversion whenever a source file under one of
// the working roots changes. Events are debounced so editor save bursts
// trigger a single run.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/scanner"
)

const debounceDelay = 500 * time.Millisecond

type FileWatcher struct {
	watcher       *fsnotify.Watcher
	roots         []string
	excludePaths  []string
	debounceTimer *time.Timer
	mu            sync.Mutex
	onChange      func() error
}

// NewFileWatcher watches every root recursively. excludePaths are relative
// directory names skipped under each root; the output directory must be in
// the list to avoid feedback loops.
func NewFileWatcher(roots, excludePaths []string, onChange func() error) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		watcher:      w,
		roots:        roots,
		excludePaths: append([]string{".git"}, excludePaths...),
		onChange:     onChange,
	}, nil
}

// Watch blocks, dispatching debounced onChange calls until the watcher is
// closed or its event channel fails.
func (fw *FileWatcher) Watch() error {
	for _, root := range fw.roots {
		if err := fw.addWatchersRecursively(root); err != nil {
			return fmt.Errorf("failed to add watchers: %w", err)
		}
	}

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if fw.shouldExcludePath(event.Name) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					fw.watcher.Add(event.Name)
					fw.debounce()
					continue
				}
			}

			if !strings.EqualFold(filepath.Ext(event.Name), scanner.SourceExtension) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)
			fw.debounce()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) debounce() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(debounceDelay, func() {
		logger.Debug("File changes detected, reconverting...")
		if err := fw.onChange(); err != nil {
			logger.Error("Reconversion failed: %v", err)
		}
	})
}

func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	return fw.watcher.Close()
}

func (fw *FileWatcher) shouldExcludePath(path string) bool {
	for _, root := range fw.roots {
		relPath, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(relPath, "..") {
			continue
		}
		relPath = filepath.Clean(relPath)

		for _, excludePath := range fw.excludePaths {
			excludePath = filepath.Clean(excludePath)
			if relPath == excludePath {
				return true
			}
			if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
				return true
			}
		}
	}
	return false
}

func (fw *FileWatcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if fw.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
