package remote

import (
	_ "embed"
	"net/http"
)

//go:embed remote.html
var remotePage []byte

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(remotePage)
}
