package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	// PasswordHash is only populated when the user record is loaded for
	// credential verification. It never leaves the service layer.
	PasswordHash string
}

// DemoUser is the fixed profile used by the demo authenticator.
func DemoUser() User {
	return User{
		ID:     "user-1",
		Name:   "Alex Rivera",
		Email:  "alex@globetrotter.com",
		Avatar: "User",
	}
}
