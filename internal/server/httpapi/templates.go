package httpapi

import (
	"html/template"
	"net/http"
)

// The pages are deliberately bare: the interesting client lives elsewhere
// (the browser-side crypto is not this server's concern). Their contract is
// the redirects, the error re-render, and the dashboard's user_salt value.
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "landing"}}<!DOCTYPE html>
<html><head><title>PassVault</title></head>
<body>
<h1>PassVault</h1>
<p>A vault for client-encrypted passwords. The server never sees a secret in the clear.</p>
<p><a href="/login">Log in</a> or <a href="/register">register</a>.</p>
</body></html>
{{end}}

{{define "register"}}<!DOCTYPE html>
<html><head><title>Register — PassVault</title></head>
<body>
<h1>Register</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/register">
<label>Username <input name="username" required></label>
<label>Email <input name="email" type="email" required></label>
<label>Password <input name="password" type="password" required></label>
<label>Confirm password <input name="confirm_password" type="password" required></label>
<button type="submit">Register</button>
</form>
</body></html>
{{end}}

{{define "login"}}<!DOCTYPE html>
<html><head><title>Login — PassVault</title></head>
<body>
<h1>Login</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
<label>Username <input name="username" required></label>
<label>Password <input name="password" type="password" required></label>
<button type="submit">Log in</button>
</form>
</body></html>
{{end}}

{{define "dashboard"}}<!DOCTYPE html>
<html><head><title>Dashboard — PassVault</title></head>
<body data-user-salt="{{.UserSalt}}">
<h1>Your vault</h1>
<form method="post" action="/logout"><button type="submit">Log out</button></form>
</body></html>
{{end}}
`))

type pageData struct {
	Error    string
	UserSalt string
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "template render failed", "page", name, "error", err.Error())
	}
}
