package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures Watch.
type WatchOptions struct {
	// Path is the checked file or directory. Directories are watched
	// recursively; for a file its directory is watched.
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch calls run once, then again after every debounced change to a Go
// source or go.mod under opts.Path, until ctx is cancelled. Each run is a
// full, independent check. An error from run stops the loop.
func Watch(ctx context.Context, opts WatchOptions, run func(context.Context) error) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	root, err := watchRoot(opts.Path)
	if err != nil {
		return err
	}
	if err := watchDirRecursive(watcher, root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	eg, egctx := errgroup.WithContext(ctx)
	trigger := make(chan struct{}, 1)

	eg.Go(func() error {
		if err := run(egctx); err != nil {
			return err
		}
		for {
			select {
			case <-egctx.Done():
				return nil
			case <-trigger:
				if err := run(egctx); err != nil {
					return err
				}
			}
		}
	})

	eg.Go(func() error {
		var debounce *time.Timer
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()

		for {
			select {
			case <-egctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = watchDirRecursive(watcher, event.Name)
					}
				}
				if !relevant(event) {
					continue
				}
				logger.Debug("file changed", "file", event.Name, "op", event.Op.String())

				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(opts.Debounce, func() {
					select {
					case trigger <- struct{}{}:
					default:
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("watcher error", "error", err)
			}
		}
	})

	return eg.Wait()
}

func watchRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return abs, nil
}

// relevant reports whether event can change the check result.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return strings.HasSuffix(base, ".go") || base == "go.mod"
}

// watchDirRecursive adds a directory and all subdirectories to the watcher,
// skipping hidden directories, vendor and testdata.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (strings.HasPrefix(name, ".") || name == "vendor" || name == "testdata") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
