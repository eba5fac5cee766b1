package server

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/dataset"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected pages and pushes a reload message when the
// dataset changes.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	// Drain until the page goes away; the hub only ever writes.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast tells every connected page to refresh.
func (h *reloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// datasetWatcher reloads the dataset directory when its files change.
type datasetWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// watchDataset watches dir for YAML changes and calls onReload with the
// result of each reload attempt. Bursts of events (editors write several
// times per save) are debounced.
func watchDataset(dir string, onReload func(*comparison.Registry, error)) (*datasetWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	dw := &datasetWatcher{watcher: fw, done: make(chan struct{})}

	go func() {
		var timer *time.Timer
		reload := func() {
			reg, err := dataset.LoadDir(dir)
			onReload(reg, err)
		}
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(event.Name, ".yaml") {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(200*time.Millisecond, reload)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Printf("server: dataset watcher: %v", err)
			case <-dw.done:
				return
			}
		}
	}()

	return dw, nil
}

func (w *datasetWatcher) Close() {
	close(w.done)
	w.watcher.Close()
}
