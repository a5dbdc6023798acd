package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestParseRelayURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseRelayURL("", "")
	if err != nil {
		t.Fatalf("parseRelayURL returned error: %v", err)
	}
	if got := u.String(); got != "ws://127.0.0.1:8765/" {
		t.Fatalf("url = %q, want ws://127.0.0.1:8765/", got)
	}

	u, err = parseRelayURL("http://example.com:9000/ignored?x=1#frag", "feed")
	if err != nil {
		t.Fatalf("parseRelayURL returned error: %v", err)
	}
	if got := u.String(); got != "ws://example.com:9000/feed" {
		t.Fatalf("url = %q, want ws://example.com:9000/feed", got)
	}

	u, err = parseRelayURL("https://example.com", "")
	if err != nil {
		t.Fatalf("parseRelayURL returned error: %v", err)
	}
	if u.Scheme != "wss" {
		t.Fatalf("scheme = %q, want wss", u.Scheme)
	}

	if _, err := parseRelayURL("ftp://example.com", ""); err == nil {
		t.Fatalf("parseRelayURL accepted ftp scheme")
	}
}

func TestClient_StreamDeliversDecodedFrames(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		frames := []string{
			`{"players":[{"index":0,"name":"Alice"}]}`,
			`{not json`,
			`{"idx":0,"ctrl":{"jm":1}}`,
			`{"spectate":0}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "/", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if !strings.HasPrefix(c.URL(), "ws://") {
		t.Fatalf("URL = %q, want ws scheme", c.URL())
	}

	var mu sync.Mutex
	var kinds []Kind
	connected := false
	c.OnConnect = func() { connected = true }
	c.OnMessage = func(m Message) {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, m.Kind)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	err = c.Stream(ctx)
	if err == nil || !strings.Contains(err.Error(), "relay closed") {
		t.Fatalf("Stream error = %v, want relay closed", err)
	}
	if !connected {
		t.Fatalf("OnConnect was not called")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []Kind{KindRoster, KindControl, KindFocus}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestClient_StreamReturnsNilOnCancel(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	c, err := NewClient(server.URL, "", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.OnConnect = cancel

	done := make(chan error, 1)
	go func() { done <- c.Stream(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Stream error = %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Stream did not return after cancel")
	}
}

func TestClient_StreamDialError(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", "", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	err = c.Stream(context.Background())
	if err == nil || !strings.Contains(err.Error(), "dial relay") {
		t.Fatalf("Stream error = %v, want dial relay error", err)
	}
}
