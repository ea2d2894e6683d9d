package remote

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/drrakendu78/ets2-local-radio/pairing"
)

var (
	// ErrNotEnabled is returned when the pairing URL is requested while
	// remote control is switched off.
	ErrNotEnabled = errors.New("remote: not enabled")

	// ErrNoToken is returned when no pairing token is active.
	ErrNoToken = errors.New("remote: no pairing token")
)

// Server is the remote control core. It owns every shared cell: the pairing
// token, the current playback snapshot, the broadcast hub and the command
// queue. The host application drives it through UpdateState, PopCommand and
// the enable/disable lifecycle; phones connect through the WebSocket
// endpoint it serves.
type Server struct {
	log    zerolog.Logger
	tokens *pairing.Tokens
	store  *store
	hub    *Hub
	queue  *Queue

	mu       sync.Mutex
	port     int
	enabled  bool
	listener net.Listener
}

// NewServer creates a server that will listen on port once enabled. Port 0
// picks a free port at listen time.
func NewServer(log zerolog.Logger, port int) *Server {
	return &Server{
		log:    log.With().Str("component", "remote").Logger(),
		tokens: pairing.NewTokens(),
		store:  newStore(),
		hub:    NewHub(),
		queue:  NewQueue(),
		port:   port,
	}
}

// UpdateState replaces the current snapshot and broadcasts it to every
// connected session. This is the host's only write path into client state.
func (s *Server) UpdateState(state RadioState) {
	s.store.Set(state)
	s.hub.Publish(state)
}

// State returns the current snapshot.
func (s *Server) State() RadioState {
	return s.store.Get()
}

// PopCommand returns the next queued remote command, if any. The host polls
// this at its own cadence.
func (s *Server) PopCommand() (string, bool) {
	return s.queue.Pop()
}

// Enable starts the listener if it is not yet running, rotates the pairing
// token and returns the pairing QR code as a PNG data URL. Sessions
// authenticated under an earlier token stay connected; the token only gates
// admission.
func (s *Server) Enable() (string, error) {
	if err := s.ensureListening(); err != nil {
		return "", err
	}
	token := s.tokens.Generate()

	ip, err := pairing.LocalIP()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.enabled = true
	port := s.port
	s.mu.Unlock()

	url := pairing.BuildURL(token, ip, port)
	s.log.Info().Str("url", url).Msg("remote control enabled")
	return pairing.RenderQR(url)
}

// Disable invalidates the token and stops admitting new sessions. Sessions
// that are already open are not torn down.
func (s *Server) Disable() {
	s.mu.Lock()
	s.enabled = false
	s.mu.Unlock()
	s.tokens.Invalidate()
	s.log.Info().Msg("remote control disabled")
}

// Status reports whether remote control is enabled.
func (s *Server) Status() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// URL returns the current pairing URL, for hosts that want to show it as
// text next to the QR code.
func (s *Server) URL() (string, error) {
	if !s.Status() {
		return "", ErrNotEnabled
	}
	token, ok := s.tokens.Current()
	if !ok {
		return "", ErrNoToken
	}
	ip, err := pairing.LocalIP()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	port := s.port
	s.mu.Unlock()
	return pairing.BuildURL(token, ip, port), nil
}

// Close stops the listener. Intended for host shutdown; open sessions end
// when their connections drop.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	s.listener = nil
	return err
}

// Handler returns the HTTP surface: the control page on / and /remote, and
// the WebSocket upgrade on /ws.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handlePage)
	r.Get("/remote", s.handlePage)
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) ensureListening() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("remote: listen: %w", err)
	}
	s.listener = ln
	// Adopt the kernel-picked port when configured with 0, so pairing URLs
	// point at the real one.
	s.port = ln.Addr().(*net.TCPAddr).Port

	go func() {
		if err := http.Serve(ln, s.Handler()); err != nil {
			s.log.Debug().Err(err).Msg("listener stopped")
		}
	}()

	s.log.Info().Int("port", s.port).Msg("listening")
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket accept failed")
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "session closed")

	s.handleSession(r.Context(), c, r.URL.Query().Get("token"))
}
