package httpapi

import (
	"net"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// userHandler receives the authenticated user's ID resolved by withUser.
type userHandler func(w http.ResponseWriter, r *http.Request, userID string)

// failureMode is how a route answers an anonymous caller: pages redirect to
// the login form, JSON routes answer 401 with a structured body.
type failureMode int

const (
	redirectToLogin failureMode = iota
	respondUnauthorized
)

// withUser validates the session once at the boundary and threads the user
// identity into the handler as an explicit parameter.
func (s *Server) withUser(mode failureMode, next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.sessions.Validate(r.Context(), sessionToken(r))
		if err != nil {
			switch mode {
			case redirectToLogin:
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			default:
				writeJSONStatus(w, http.StatusUnauthorized, errorResponse("authentication required"))
			}
			return
		}
		next(w, r, userID)
	}
}

// sessionToken extracts the opaque token from the session cookie, or "".
func sessionToken(r *http.Request) string {
	c, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, token string) {
	// no Expires/MaxAge: the cookie dies with the browser, the server-side
	// TTL is the authoritative lifetime
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// clientAddr returns the client network address: the first X-Forwarded-For
// element when present, otherwise the remote address host.
func clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
