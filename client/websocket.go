package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Subscribe streams status events for session until ctx is done or the
// server closes the socket. The channel is closed when the stream ends.
func (c *Client) Subscribe(ctx context.Context, session string) (<-chan Event, error) {
	if session == "" {
		session = c.Session()
	}
	if session == "" {
		return nil, errors.New("session required")
	}
	wsURL, err := c.wsURL(session)
	if err != nil {
		return nil, fmt.Errorf("build websocket url: %w", err)
	}

	opts := &websocket.DialOptions{}
	if c.APIKey != "" {
		opts.HTTPHeader = http.Header{"Authorization": []string{"Bearer " + c.APIKey}}
	}
	conn, _, err := websocket.Dial(ctx, wsURL, opts)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer conn.Close(websocket.StatusNormalClosure, "client closing")
		for {
			var ev Event
			if err := wsjson.Read(ctx, conn, &ev); err != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

func (c *Client) wsURL(session string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = "/ws/searches/" + session
	return u.String(), nil
}
