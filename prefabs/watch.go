package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edits to spec and script files under the watched
// directories. A burst of writes to the same file is reported once, after
// the file has gone quiet.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// NewDiskWatcher watches DiskDir and its scripts directory.
func NewDiskWatcher() (*Watcher, error) {
	return NewWatcher(DiskDir, filepath.Join(DiskDir, "scripts"))
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns the prefab names changed since the last call without blocking.
func (w *Watcher) Poll() []string {
	if w == nil {
		return nil
	}
	var out []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return out
			}
			out = append(out, name)
		default:
			return out
		}
	}
}

type quietFile struct {
	path string
	gen  int
}

type pendingFile struct {
	timer *time.Timer
	gen   int
}

// run reports a file once it has been quiet for watchDebounce. Every new
// event for the same path pushes the deadline back.
func (w *Watcher) run() {
	defer close(w.doneCh)
	pending := make(map[string]*pendingFile)
	quiet := make(chan quietFile, 16)
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			p, ok := pending[event.Name]
			if !ok {
				p = &pendingFile{}
				pending[event.Name] = p
			}
			if p.timer != nil {
				p.timer.Stop()
			}
			p.gen++
			fired := quietFile{path: event.Name, gen: p.gen}
			p.timer = time.AfterFunc(watchDebounce, func() {
				select {
				case quiet <- fired:
				case <-w.closeCh:
				}
			})
		case q := <-quiet:
			// A stale timer may fire after a newer event reset the path.
			p, ok := pending[q.path]
			if !ok || p.gen != q.gen {
				continue
			}
			delete(pending, q.path)
			select {
			case w.Events <- specName(q.path):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// specName maps a disk path back to the name Load and LoadScript accept.
func specName(path string) string {
	s := filepath.ToSlash(path)
	prefix := filepath.ToSlash(DiskDir) + "/"
	if i := strings.LastIndex(s, prefix); i >= 0 {
		return s[i+len(prefix):]
	}
	return filepath.Base(s)
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo"
}
