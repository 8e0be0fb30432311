// Package watch watches a directory of JavaScript files and
// re-beautifies a file in place whenever it changes, mirroring
// module/watchdog.MonitorRules's fsnotify watcher goroutine.
package watch

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/muraenateam/jsbeautify/log"
	"github.com/muraenateam/jsbeautify/pkg/jsbeautify"
)

// Watcher re-formats .js files under a directory whenever they are
// written to.
type Watcher struct {
	Dir  string
	Opts jsbeautify.RawOptions
}

// New returns a Watcher rooted at dir.
func New(dir string, opts jsbeautify.RawOptions) *Watcher {
	return &Watcher{Dir: dir, Opts: opts}
}

// Run watches w.Dir until stop is closed, the same select-over-Events
// forever loop MonitorRules uses in place of a done channel.
func (w *Watcher) Run(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.Dir); err != nil {
		return err
	}

	log.Debug("watching %s for .js changes", w.Dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".js") {
				continue
			}
			if err := w.reformat(event.Name); err != nil {
				log.Error("reformatting %s: %s", event.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err.Error())

		case <-stop:
			return nil
		}
	}
}

func (w *Watcher) reformat(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	source, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	beautified := jsbeautify.BeautifyString(string(source), w.Opts)
	if beautified == string(source) {
		return nil
	}

	log.Info("reformatted %s", filepath.Base(path))
	return ioutil.WriteFile(path, []byte(beautified), info.Mode())
}
