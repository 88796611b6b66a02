package models

import "time"

// Entry is one stored (website, username, ciphertext, salt, iv) record owned
// by a user. The triple (UserID, Website, Username) is unique; saving it
// again overwrites the ciphertext fields and bumps UpdatedAt.
type Entry struct {
	ID                int64
	UserID            string
	Website           string
	Username          string
	EncryptedPassword string
	Salt              string
	IV                string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
