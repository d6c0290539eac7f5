package api

import (
	"context"
	"fmt"
	"net/url"
)

// Admin user management.

// AllUsers returns every account.
func (c *Client) AllUsers(ctx context.Context, p PageParams) (Page[User], error) {
	var page Page[User]
	err := c.get(ctx, "/users/admin/all", pageQuery(p), &page)
	return page, err
}

// ActiveUsers returns accounts that are not deactivated.
func (c *Client) ActiveUsers(ctx context.Context, p PageParams) (Page[User], error) {
	var page Page[User]
	err := c.get(ctx, "/users/admin/active", pageQuery(p), &page)
	return page, err
}

// UsersByRole returns accounts with the given role.
func (c *Client) UsersByRole(ctx context.Context, role string, p PageParams) (Page[User], error) {
	var page Page[User]
	err := c.get(ctx, "/users/admin/by-role/"+url.PathEscape(role), pageQuery(p), &page)
	return page, err
}

// GetUser returns one account.
func (c *Client) GetUser(ctx context.Context, id int64) (User, error) {
	var u User
	err := c.get(ctx, fmt.Sprintf("/users/admin/%d", id), nil, &u)
	return u, err
}

// UpdateUser updates an account.
func (c *Client) UpdateUser(ctx context.Context, id int64, update UserUpdate) (User, error) {
	var u User
	err := c.put(ctx, fmt.Sprintf("/users/admin/%d", id), update, &u)
	return u, err
}

// DeactivateUser disables an account without deleting it.
func (c *Client) DeactivateUser(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/users/admin/%d/deactivate", id), nil, nil)
}

// ActivateUser re-enables a deactivated account.
func (c *Client) ActivateUser(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/users/admin/%d/activate", id), nil, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/admin/%d", id))
}

// Public availability checks used during registration.

// CheckUsername reports whether the username is still available.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var available bool
	err := c.get(ctx, "/users/check-username/"+url.PathEscape(username), nil, &available)
	return available, err
}

// CheckEmail reports whether the email is still available.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var available bool
	err := c.get(ctx, "/users/check-email/"+url.PathEscape(email), nil, &available)
	return available, err
}
