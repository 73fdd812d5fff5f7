package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListUsers returns users matching the optional filter.
func (c *Client) ListUsers(ctx context.Context, filter map[string]interface{}) ([]User, error) {
	var users []User
	if err := c.Get(ctx, "users", filter, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user by id.
func (c *Client) GetUser(ctx context.Context, id int, viewContext string) (*User, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	query := map[string]interface{}{"context": normalizeViewContext(viewContext)}
	var user User
	if err := c.Get(ctx, fmt.Sprintf("users/%d", id), query, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the account the site's credentials resolve to.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "users/me", map[string]interface{}{"context": "edit"}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user from the given fields.
func (c *Client) CreateUser(ctx context.Context, fields map[string]interface{}) (*User, error) {
	var user User
	if err := c.Post(ctx, "users", fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user; the id travels in the path only.
func (c *Client) UpdateUser(ctx context.Context, id int, fields map[string]interface{}) (*User, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var user User
	if err := c.Put(ctx, fmt.Sprintf("users/%d", id), withoutID(fields), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user. Supplying reassign (> 0) moves the user's
// content to that account and implies a forced delete; WordPress has no
// trash state for users.
func (c *Client) DeleteUser(ctx context.Context, id int, force bool, reassign int) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}

	query := map[string]interface{}{"force": force}
	if reassign > 0 {
		if _, err := ValidateID(reassign, "reassign"); err != nil {
			return nil, err
		}
		query["reassign"] = reassign
		query["force"] = true
	}

	var result json.RawMessage
	if err := c.Delete(ctx, fmt.Sprintf("users/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListApplicationPasswords lists the revocable application passwords of
// one user account.
func (c *Client) ListApplicationPasswords(ctx context.Context, userID int) ([]ApplicationPassword, error) {
	if _, err := ValidateID(userID, "user_id"); err != nil {
		return nil, err
	}
	var passwords []ApplicationPassword
	path := fmt.Sprintf("users/%d/application-passwords", userID)
	if err := c.Get(ctx, path, nil, &passwords); err != nil {
		return nil, err
	}
	return passwords, nil
}
