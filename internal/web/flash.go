package web

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSession = "lostfound_flash"

// Flash is a one-shot message surfaced on the next rendered page. Category
// is one of "success", "warning", or "error".
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

func newSessionStore(secretKey string) sessions.Store {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

func (s *Server) addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := s.sessions.Get(r, flashSession)
	session.AddFlash(Flash{Category: category, Message: message})
	if err := session.Save(r, w); err != nil {
		s.logger.Error("failed to save flash session", "error", err)
	}
}

// popFlashes drains pending flashes, clearing them from the cookie.
func (s *Server) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := s.sessions.Get(r, flashSession)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			s.logger.Error("failed to clear flash session", "error", err)
		}
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
