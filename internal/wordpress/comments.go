package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListComments returns comments matching the optional filter.
func (c *Client) ListComments(ctx context.Context, filter map[string]interface{}) ([]Comment, error) {
	var comments []Comment
	if err := c.Get(ctx, "comments", filter, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetComment fetches one comment by id.
func (c *Client) GetComment(ctx context.Context, id int) (*Comment, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var comment Comment
	if err := c.Get(ctx, fmt.Sprintf("comments/%d", id), nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateComment creates a comment from the given fields.
func (c *Client) CreateComment(ctx context.Context, fields map[string]interface{}) (*Comment, error) {
	var comment Comment
	if err := c.Post(ctx, "comments", fields, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment updates a comment; the id travels in the path only.
func (c *Client) UpdateComment(ctx context.Context, id int, fields map[string]interface{}) (*Comment, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var comment Comment
	if err := c.Put(ctx, fmt.Sprintf("comments/%d", id), withoutID(fields), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment deletes a comment, to trash by default.
func (c *Client) DeleteComment(ctx context.Context, id int, force bool) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var result json.RawMessage
	query := map[string]interface{}{"force": force}
	if err := c.Delete(ctx, fmt.Sprintf("comments/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}
