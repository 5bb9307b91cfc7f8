package auth

import "context"

// DevAuthorizer treats the bearer token itself as the user ID. Development
// and test use only; production deployments supply a real Authorizer in
// front of a token service.
type DevAuthorizer struct{}

func NewDevAuthorizer() *DevAuthorizer { return &DevAuthorizer{} }

func (a *DevAuthorizer) Authorize(_ context.Context, token string) (*Actor, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	return &Actor{UserID: token}, nil
}
