package prism

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// PresetWatcher is a utility struct used to watch a preset file for changes, reloading it whenever it's written.
// This is useful when, for example, tweaking Material values while an application is running.
type PresetWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	// OnChange is run on the watcher's goroutine with the reloaded Library every time the file changes.
	// If the file couldn't be loaded, library is nil and err is set.
	OnChange func(library *Library, err error)
}

// NewPresetWatcher creates a new PresetWatcher watching the preset file at path. onChange is called each time the file
// is created, written to or replaced. The file doesn't need to exist yet, but its directory does.
func NewPresetWatcher(path string, onChange func(library *Library, err error)) (*PresetWatcher, error) {

	if _, err := PresetFormatOf(path); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}

	// Editors often save by replacing the file, so the directory is watched rather than the file itself.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("error watching %s: %w", filepath.Dir(absPath), err)
	}

	watch := &PresetWatcher{
		path:     absPath,
		watcher:  watcher,
		done:     make(chan struct{}),
		OnChange: onChange,
	}

	watch.wg.Add(1)
	go watch.run()

	return watch, nil

}

// Path returns the absolute path of the watched file.
func (watch *PresetWatcher) Path() string {
	return watch.path
}

func (watch *PresetWatcher) run() {

	defer watch.wg.Done()

	for {
		select {

		case <-watch.done:
			return

		case event, ok := <-watch.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != watch.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				watch.reload()
			}

		case err, ok := <-watch.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("PresetWatcher: %s", err)

		}
	}

}

func (watch *PresetWatcher) reload() {

	library, err := LoadPresetFile(watch.path)
	if err != nil {
		logger.Warnf("PresetWatcher: couldn't reload %s: %s", watch.path, err)
	} else {
		logger.Debugf("PresetWatcher: reloaded %s (%d materials)", watch.path, len(library.Materials))
	}

	if watch.OnChange != nil {
		watch.OnChange(library, err)
	}

}

// Close stops watching the file. OnChange won't be called once Close returns.
func (watch *PresetWatcher) Close() error {
	select {
	case <-watch.done:
		return nil
	default:
	}
	close(watch.done)
	err := watch.watcher.Close()
	watch.wg.Wait()
	return err
}
