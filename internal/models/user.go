package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the profile shape sent to clients. CreatedAt is only filled
// by the "who am I" lookup.
type PublicUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Public strips the hash and keeps the creation time.
func (u User) Public() PublicUser {
	created := u.CreatedAt
	return PublicUser{ID: u.ID, Username: u.Username, CreatedAt: &created}
}
