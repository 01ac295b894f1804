package domain

import "time"

// User is a registered customer account. The password hash never leaves
// the repository layer; handlers only ever see PublicUser.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the profile returned to clients after login.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
