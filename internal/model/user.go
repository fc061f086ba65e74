package model

// User represents a reviewer profile.
type User struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Picture string `json:"picture" db:"picture"`
}
