package remote

import "encoding/json"

// Server→client message types.
const (
	msgAuthResult = "authResult"
	msgState      = "state"
	msgCommand    = "command"
	msgError      = "error"
)

// clientMessage is one decoded frame from a remote client. Type is the
// discriminator; unknown types decode fine and are ignored by the session,
// which keeps the protocol tolerant of newer clients.
type clientMessage struct {
	Type  string   `json:"type"`
	Token string   `json:"token,omitempty"`
	Value *float64 `json:"value,omitempty"`
}

// parseClientMessage decodes a raw frame. ok is false for frames that are
// not valid JSON objects; those are dropped without a reply.
func parseClientMessage(data []byte) (clientMessage, bool) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return clientMessage{}, false
	}
	return msg, true
}

// authResult acknowledges the handshake, in both directions of success.
type authResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// stateMessage carries a full RadioState snapshot to the client.
type stateMessage struct {
	Type string `json:"type"`
	RadioState
}

// commandMessage is part of the wire protocol but unused by current flows.
type commandMessage struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}

// errorMessage reports a server-side problem to one client.
type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
