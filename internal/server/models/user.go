// Package models contains the server-side data model. The server never sees
// plaintext secrets: the password hash is a one-way bcrypt verifier and the
// vault payloads are opaque client-side ciphertext.
package models

import "time"

type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
