package remote

import "sync"

// RadioState is a full snapshot of playback status as shown to remote
// clients. Updates replace the previous value wholesale; there are no
// partial writes, so any snapshot a client holds is self-sufficient.
type RadioState struct {
	StationID   string  `json:"stationId"`
	StationName string  `json:"stationName"`
	Country     string  `json:"country"`
	Volume      float64 `json:"volume"`
	Playing     bool    `json:"playing"`
	Muted       bool    `json:"muted"`
}

// DefaultState is what clients see before the host pushes anything.
func DefaultState() RadioState {
	return RadioState{
		StationName: "-",
		Country:     "-",
		Volume:      1.0,
	}
}

// store holds the latest known snapshot. It feeds both the pairing flow and
// newly admitted sessions, which receive the current value immediately.
type store struct {
	mu    sync.Mutex
	state RadioState
}

func newStore() *store {
	return &store{state: DefaultState()}
}

func (s *store) Get() RadioState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *store) Set(state RadioState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
