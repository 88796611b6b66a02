package common

// SessionCookieName is the cookie that carries the opaque session token.
// The cookie is set without an expiry so it dies with the browser; the
// server-side TTL is the authoritative lifetime.
const SessionCookieName = "passvault_session"

// UserSaltBytes is the entropy, in bytes, of the per-user encryption salt
// handed to the client for key derivation. The stored value is hex-encoded,
// so the string is twice as long.
const UserSaltBytes = 32
