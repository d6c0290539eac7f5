package api

import "context"

// SignIn authenticates with username/password and returns the bearer token
// plus identity. It does not install the token; the session layer does that.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/signin", creds, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// SignUp creates a new account. Callers log in separately afterwards.
func (c *Client) SignUp(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "/auth/signup", req, nil)
}

// CurrentUser returns the identity behind the installed token.
func (c *Client) CurrentUser(ctx context.Context) (Identity, error) {
	var id Identity
	if err := c.get(ctx, "/auth/me", nil, &id); err != nil {
		return Identity{}, err
	}
	return id, nil
}
