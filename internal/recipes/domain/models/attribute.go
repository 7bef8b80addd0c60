package models

// Attribute is a named recipe attribute owned by a single user. Tags and
// ingredients share this shape and differ only in the table they live in.
type Attribute struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int    `json:"-"`
}
