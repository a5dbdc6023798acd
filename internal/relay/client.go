package relay

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	defaultRelayAddr = "127.0.0.1:8765"
	handshakeTimeout = 5 * time.Second
	readLimit        = 64 * 1024
)

// Client reads control frames from the relay's websocket. It does not
// reconnect on its own; callers loop over Stream.
type Client struct {
	url    *url.URL
	dialer *websocket.Dialer
	log    *zap.Logger

	// OnConnect runs after the handshake succeeds.
	OnConnect func()
	// OnMessage receives every frame that decodes. It runs on the reader
	// goroutine and must not touch state owned by another goroutine.
	OnMessage func(Message)
}

// NewClient builds a Client for addr (host:port or a ws:// URL) and path.
func NewClient(addr, path string, logger *zap.Logger) (*Client, error) {
	u, err := parseRelayURL(addr, path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url: u,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		log: logger,
	}, nil
}

// URL returns the relay endpoint.
func (c *Client) URL() string {
	return c.url.String()
}

// Stream dials the relay and delivers frames until the connection drops or
// ctx is cancelled. Cancellation returns nil; a dropped connection returns
// the read error.
func (c *Client) Stream(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	conn, _, err := c.dialer.DialContext(ctx, c.url.String(), nil)
	if err != nil {
		return fmt.Errorf("dial relay: %w", err)
	}
	defer func() { _ = conn.Close() }()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	c.log.Info("relay connected", zap.String("url", c.url.String()))
	if c.OnConnect != nil {
		c.OnConnect()
	}

	conn.SetReadLimit(readLimit)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("relay closed: %w", err)
			}
			return fmt.Errorf("read relay: %w", err)
		}

		msg, err := Decode(data)
		if err != nil {
			level := zap.WarnLevel
			if errors.Is(err, ErrUnknownMessage) {
				level = zap.DebugLevel
			}
			c.log.Log(level, "dropping relay frame", zap.Error(err), zap.Int("bytes", len(data)))
			continue
		}
		if c.OnMessage != nil {
			c.OnMessage(msg)
		}
	}
}

func parseRelayURL(addr, path string) (*url.URL, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		trimmed = defaultRelayAddr
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "ws://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse relay_addr %q: %w", addr, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return nil, fmt.Errorf("parse relay_addr %q: unsupported scheme %q", addr, u.Scheme)
	}
	if p := strings.TrimSpace(path); p != "" {
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		u.Path = p
	} else if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
