package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// dialTestConn upgrades against a throwaway server whose read loop discards
// every frame, and returns the wrapped client side.
func dialTestConn(t *testing.T) *Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer sc.Close()
		for {
			if _, _, err := sc.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	raw, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { raw.Close() })

	return NewConn(raw)
}

// The notification forwarder and the request loop write from different
// goroutines; the wrapper must keep gorilla's one-writer rule intact.
func TestConnSerializesConcurrentWriters(t *testing.T) {
	conn := dialTestConn(t)

	const writesPerGoroutine = 200
	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < writesPerGoroutine; i++ {
				if err := conn.WriteTyped(NotificationEvent{
					Event: EventNotification,
					Title: "t",
					Body:  "b",
				}); err != nil {
					t.Errorf("write: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestConnWriteError(t *testing.T) {
	conn := dialTestConn(t)

	if err := conn.WriteError("bad action"); err != nil {
		t.Fatalf("write error frame: %v", err)
	}
}
