// Package auth defines the authorization boundary of the planner service.
// Token issuance and verification live outside the core; the service only
// consumes an Authorizer that maps a bearer token to an actor.
package auth

import (
	"context"
	"errors"
)

// Actor identifies the authenticated caller.
type Actor struct {
	UserID string `json:"userId"`
}

// Authorizer validates a bearer token and resolves its actor.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*Actor, error)
}

// ErrUnauthorized is returned for missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
