package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// handleIndex redirects authenticated visitors to the dashboard and shows
// the landing page to everyone else.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Check(r.Context(), sessionToken(r)) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.renderPage(w, r, "landing", pageData{})
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "register", pageData{})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, "register", pageData{Error: "All fields are required."})
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	// confirm-password equality is a boundary pre-check, never stored state
	if password != confirm {
		s.renderPage(w, r, "register", pageData{Error: common.ErrorPasswordMismatch.Error()})
		return
	}

	_, err := s.users.Register(r.Context(), username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorMissingField):
			s.renderPage(w, r, "register", pageData{Error: "All fields are required."})
		case errors.Is(err, common.ErrorWeakPassword),
			errors.Is(err, common.ErrorUsernameTaken),
			errors.Is(err, common.ErrorEmailTaken):
			s.renderPage(w, r, "register", pageData{Error: err.Error()})
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			s.renderPage(w, r, "register", pageData{Error: "Registration failed. Please try again."})
		}
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "login", pageData{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, "login", pageData{Error: "Username and password are required."})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		s.renderPage(w, r, "login", pageData{Error: "Username and password are required."})
		return
	}

	token, err := s.sessions.Login(r.Context(), username, password, clientAddr(r))
	if err != nil {
		// one generic message for unknown user and wrong password alike
		s.renderPage(w, r, "login", pageData{Error: common.ErrorUnauthorized.Error()})
		return
	}

	setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout accepts GET and POST; logging out twice is not an error.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(r.Context(), sessionToken(r)); err != nil {
		s.logger.Warn(r.Context(), "logout failed", "error", err.Error())
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDashboard serves the vault page along with the user's encryption
// salt, which the client needs to re-derive its local key.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, userID string) {
	salt, err := s.salts.GetOrCreateSalt(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "salt provisioning failed", "user_id", userID, "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, "dashboard", pageData{UserSalt: salt})
}
