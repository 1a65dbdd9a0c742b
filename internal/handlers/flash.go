package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "_campwright_session"

// addFlash queues a one-shot message on the session for the page the
// client is being redirected to.
func addFlash(store sessions.Store, w http.ResponseWriter, r *http.Request, msg string) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return
	}
	session.AddFlash(msg)
	_ = session.Save(r, w)
}

// popFlashes drains and returns any queued messages.
func popFlashes(store sessions.Store, w http.ResponseWriter, r *http.Request) []string {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)
	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
