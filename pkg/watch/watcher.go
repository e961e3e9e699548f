package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcherConfig contains configuration for the file watcher.
type FileWatcherConfig struct {
	// Path is the spec file or directory to watch
	Path string

	// DebounceInterval is the quiet period before a change is reported
	// (default: 200ms)
	DebounceInterval time.Duration

	// Extensions limits directory watches to these file extensions.
	// Ignored when Path is a file.
	Extensions []string

	// SkipHidden ignores dot files, including editor swap files
	SkipHidden bool
}

// DefaultFileWatcherConfig returns the default watcher configuration.
func DefaultFileWatcherConfig() *FileWatcherConfig {
	return &FileWatcherConfig{
		DebounceInterval: 200 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml", ".json"},
		SkipHidden:       true,
	}
}

// FileWatcher reports debounced changes to a spec file or a directory of
// spec files.
//
// A single file is watched through its parent directory. Editors commonly
// save by writing a temporary file and renaming it over the original,
// which would silently end a watch placed on the file itself.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *FileWatcherConfig
	debounce *Debouncer

	// target is the cleaned file path when watching a single file
	target string

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher creates a watcher for config.Path, which must exist.
func NewFileWatcher(config *FileWatcherConfig, logger *slog.Logger) (*FileWatcher, error) {
	if config == nil {
		config = DefaultFileWatcherConfig()
	}
	if config.Path == "" {
		return nil, errors.New("watch path is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		logger:   logger.With("component", "watch"),
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	if !info.IsDir() {
		fw.target = filepath.Clean(config.Path)
	}
	return fw, nil
}

// Watch blocks until ctx is cancelled or Stop is called, invoking onChange
// with the changed path after each debounced burst of events.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func(path string)) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return errors.New("watcher already running")
	}
	fw.running = true
	fw.mu.Unlock()

	defer close(fw.doneCh)

	if err := fw.addPath(); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	fw.logger.Info("file watcher started",
		"path", fw.config.Path,
		"debounce_ms", fw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Debug("file watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Debug("file watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !fw.shouldProcessEvent(event) {
				continue
			}

			fw.logger.Debug("file event detected", "path", event.Name, "op", event.Op.String())

			name := event.Name
			fw.debounce.Trigger(func() {
				onChange(name)
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			fw.logger.Error("file watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and releases its resources. Safe to call more
// than once and before Watch.
func (fw *FileWatcher) Stop() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.stopCh)

		fw.mu.Lock()
		running := fw.running
		fw.mu.Unlock()
		if running {
			<-fw.doneCh
		}

		fw.debounce.Stop()
		if cerr := fw.watcher.Close(); cerr != nil {
			err = fmt.Errorf("failed to close watcher: %w", cerr)
		}
	})
	return err
}

func (fw *FileWatcher) addPath() error {
	if fw.target != "" {
		return fw.watcher.Add(filepath.Dir(fw.target))
	}

	root := fw.config.Path
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if fw.config.SkipHidden && path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		return nil
	})
}

func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	if fw.target != "" {
		return filepath.Clean(event.Name) == fw.target
	}

	base := filepath.Base(event.Name)
	if fw.config.SkipHidden && strings.HasPrefix(base, ".") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(base))
	return slices.ContainsFunc(fw.config.Extensions, func(valid string) bool {
		return ext == strings.ToLower(valid)
	})
}
