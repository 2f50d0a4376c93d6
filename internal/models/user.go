package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// Identity is the public view of a user; it is what credentials carry.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username}
}
