package test_utils

import (
	"context"

	"github.com/globetrotter/globetrotter/pkg/user"
)

// TestUser is the account that repository and service tests run as.
func TestUser() user.User {
	return user.User{
		ID:    "user-test",
		Name:  "Test Traveller",
		Email: "test@globetrotter.com",
	}
}

// TestContext returns a context with TestUser signed in.
func TestContext() context.Context {
	return user.WithUser(context.Background(), TestUser())
}
