package models

import (
	"time"
)

type User struct {
	ID           int       `json:"user_id"`       //nolint:tagliatelle
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"` //nolint:tagliatelle
	Name         string    `json:"name"`
	Active       bool      `json:"is_active"`     //nolint:tagliatelle
	Staff        bool      `json:"is_staff"`      //nolint:tagliatelle
	Superuser    bool      `json:"is_superuser"`  //nolint:tagliatelle
	CreatedAt    time.Time `json:"created_at"`    //nolint:tagliatelle
}

// Token is the opaque bearer credential. A user has at most one live
// token; issuing a new one overwrites the previous key.
type Token struct {
	Key       string    `json:"token"`
	UserID    int       `json:"user_id"`    //nolint:tagliatelle
	CreatedAt time.Time `json:"created_at"` //nolint:tagliatelle
}
