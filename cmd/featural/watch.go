package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is the time to wait for further events after an input file changed.
// Editors often write a file in several steps.
const settle = 200 * time.Millisecond

// watch re-runs j whenever one of its input files changes, until the process
// is interrupted.
//
// We watch the directories of the input files, not the files themselves:
// many editors save by writing a new file and renaming it, which would
// silently end a watch on the old file.
func (j *job) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	inputs := j.inputs()
	dirs := make(map[string]bool)
	for path := range inputs {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err = watcher.Add(dir); err != nil {
			return err
		}
		tracer().Debugf("watching %s", dir)
	}
	fmt.Println("Watching input files, press Ctrl-C to stop.")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	var timer <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(event, inputs) {
				continue
			}
			tracer().Debugf("input changed: %s", event)
			timer = time.After(settle)
		case <-timer:
			timer = nil
			if err := j.run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Println("Output file created.")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			tracer().Errorf("watcher: %v", err)
		case <-interrupt:
			return nil
		}
	}
}

// inputs returns the cleaned absolute paths of all input files of j.
func (j *job) inputs() map[string]bool {
	inputs := make(map[string]bool, len(j.constraintFiles)+1)
	for _, path := range append([]string{j.featureFile}, j.constraintFiles...) {
		inputs[absPath(path)] = true
	}
	return inputs
}

// absPath returns the cleaned absolute form of path, if available.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func isRelevant(event fsnotify.Event, inputs map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return inputs[absPath(event.Name)]
}
