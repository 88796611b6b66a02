package models

import "time"

// Profile holds the per-user encryption salt handed to the client for local
// key derivation, plus login bookkeeping. Exactly one row exists per user;
// the salt is immutable after creation, since regenerating it would make
// every previously stored entry undecryptable on the client.
type Profile struct {
	UserID        string
	Salt          string
	CreatedAt     time.Time
	LastLoginAddr string
}
