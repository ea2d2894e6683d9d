package remote

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/coder/websocket"
)

// handleSession runs one client connection from handshake to teardown.
//
// The token must arrive as a query parameter on the upgrade request; a
// missing or invalid one gets a failed authResult and the connection ends
// before anything else is exchanged. An admitted session is greeted with the
// current snapshot, then runs two duties until the connection closes: a
// writer draining its hub subscription and a reader decoding commands. Both
// hang off the same context, so whichever duty ends first takes the other
// down with it.
func (s *Server) handleSession(ctx context.Context, c *websocket.Conn, token string) {
	if token == "" {
		_ = writeJSON(ctx, c, authResult{Type: msgAuthResult, Success: false, Message: "No token provided"})
		return
	}
	if !s.tokens.Validate(token) {
		s.log.Warn().Msg("rejected connection with invalid token")
		_ = writeJSON(ctx, c, authResult{Type: msgAuthResult, Success: false, Message: "Invalid token"})
		return
	}

	// Subscribe before reading the snapshot, so an update landing in
	// between still reaches this session through the hub.
	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub)

	if err := writeJSON(ctx, c, authResult{Type: msgAuthResult, Success: true, Message: "Connected"}); err != nil {
		return
	}
	if err := writeJSON(ctx, c, stateMessage{Type: msgState, RadioState: s.store.Get()}); err != nil {
		return
	}
	s.log.Info().Msg("remote client connected")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Writer duty: forward every broadcast snapshot, in publish order.
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case state, ok := <-sub.C():
				if !ok {
					return
				}
				if err := writeJSON(ctx, c, stateMessage{Type: msgState, RadioState: state}); err != nil {
					return
				}
			}
		}
	}()

	// Reader duty: decode inbound frames into queued commands. Ends on
	// disconnect, and the deferred cancel ends the writer with it.
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			s.log.Info().Msg("remote client disconnected")
			return
		}
		msg, ok := parseClientMessage(data)
		if !ok {
			continue
		}
		s.dispatch(msg)
	}
}

// dispatch handles one decoded frame from an authenticated session. The
// session never touches playback itself; it only queues intent for the host.
func (s *Server) dispatch(msg clientMessage) {
	switch msg.Type {
	case "auth":
		// Already authenticated; late or duplicate auth frames are tolerated.
	case "volume":
		if msg.Value == nil {
			return
		}
		s.queue.Push("volume:" + strconv.FormatFloat(*msg.Value, 'f', -1, 64))
	case "getState":
		// Not queued: re-publish the current snapshot so every connected
		// session, requester included, gets a refresh.
		s.hub.Publish(s.store.Get())
	case "next", "prev", "play", "pause", "togglePlay", "mute", "unmute", "favourite":
		s.queue.Push(msg.Type)
	default:
		// Unrecognized frames are dropped without a reply.
	}
}

func writeJSON(ctx context.Context, c *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, data)
}
