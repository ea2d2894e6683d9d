package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/drrakendu78/ets2-local-radio/config"
	"github.com/drrakendu78/ets2-local-radio/remote"
)

// Built-in stations for the standalone harness. The desktop shell feeds
// state from the in-game radio instead; this binary stands in for it so the
// remote can be developed and demoed without the game running.
var stations = []remote.RadioState{
	{StationID: "truckersfm", StationName: "Truckers.FM", Country: "United Kingdom"},
	{StationID: "npo-radio-2", StationName: "NPO Radio 2", Country: "Netherlands"},
	{StationID: "bayern-3", StationName: "Bayern 3", Country: "Germany"},
	{StationID: "skyrock", StationName: "Skyrock", Country: "France"},
}

func main() {
	config.Load()

	port := pflag.Int("port", config.Get().RemotePort, "TCP port for the remote control server")
	level := pflag.String("log-level", config.Get().LogLevel, "log level (trace, debug, info, warn, error)")
	pflag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	srv := remote.NewServer(logger, *port)
	if _, err := srv.Enable(); err != nil {
		logger.Fatal().Err(err).Msg("could not enable remote control")
	}
	url, err := srv.URL()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not build pairing url")
	}
	logger.Info().Str("url", url).Msg("open on your phone to pair")

	h := &host{
		server: srv,
		log:    logger.With().Str("component", "host").Logger(),
	}
	h.run()
}

// host stands in for the GUI layer: it polls the command queue at its own
// cadence, applies each action to its playback state and pushes the new
// snapshot back out to all remotes.
type host struct {
	server  *remote.Server
	log     zerolog.Logger
	station int
	state   remote.RadioState
}

func (h *host) run() {
	h.state = stations[h.station]
	h.state.Volume = 1.0
	h.state.Playing = true
	h.server.UpdateState(h.state)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		for {
			action, ok := h.server.PopCommand()
			if !ok {
				break
			}
			h.apply(action)
		}
	}
}

func (h *host) apply(action string) {
	h.log.Debug().Str("action", action).Msg("applying remote command")

	switch {
	case action == "next":
		h.tune((h.station + 1) % len(stations))
	case action == "prev":
		h.tune((h.station - 1 + len(stations)) % len(stations))
	case action == "play":
		h.state.Playing = true
	case action == "pause":
		h.state.Playing = false
	case action == "togglePlay":
		h.state.Playing = !h.state.Playing
	case action == "mute":
		h.state.Muted = true
	case action == "unmute":
		h.state.Muted = false
	case action == "favourite":
		h.log.Info().Str("station", h.state.StationName).Msg("favourited")
	case strings.HasPrefix(action, "volume:"):
		v, err := strconv.ParseFloat(strings.TrimPrefix(action, "volume:"), 64)
		if err != nil {
			return
		}
		h.state.Volume = v
	default:
		h.log.Warn().Str("action", action).Msg("unknown command")
		return
	}

	h.server.UpdateState(h.state)
}

// tune switches station while keeping volume, mute and play state.
func (h *host) tune(i int) {
	st := stations[i]
	st.Volume = h.state.Volume
	st.Muted = h.state.Muted
	st.Playing = h.state.Playing
	h.station = i
	h.state = st
}
