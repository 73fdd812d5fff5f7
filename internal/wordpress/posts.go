package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
)

// Domain operations are thin mappings from a verb to the request engine:
// they know resource paths and payload shapes, nothing else. Transport,
// auth, retries, and error classification all live in the client core.

// ListPosts returns posts matching the optional filter. Every filter
// value is normalized to its string form and appended as a query string;
// an empty filter produces an unfiltered list call.
func (c *Client) ListPosts(ctx context.Context, filter map[string]interface{}) ([]Post, error) {
	var posts []Post
	if err := c.Get(ctx, "posts", filter, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches one post by id. viewContext is one of view, embed, or
// edit, defaulting to view.
func (c *Client) GetPost(ctx context.Context, id int, viewContext string) (*Post, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	query := map[string]interface{}{"context": normalizeViewContext(viewContext)}
	var post Post
	if err := c.Get(ctx, fmt.Sprintf("posts/%d", id), query, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a post from the given fields.
func (c *Client) CreatePost(ctx context.Context, fields map[string]interface{}) (*Post, error) {
	var post Post
	if err := c.Post(ctx, "posts", fields, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post. The id travels in the path only; it is
// stripped from the body even if present in fields.
func (c *Client) UpdatePost(ctx context.Context, id int, fields map[string]interface{}) (*Post, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var post Post
	if err := c.Put(ctx, fmt.Sprintf("posts/%d", id), withoutID(fields), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post. Without force the post is moved to trash;
// force performs a permanent delete.
func (c *Client) DeletePost(ctx context.Context, id int, force bool) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var result json.RawMessage
	query := map[string]interface{}{"force": force}
	if err := c.Delete(ctx, fmt.Sprintf("posts/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func normalizeViewContext(viewContext string) string {
	switch viewContext {
	case "embed", "edit":
		return viewContext
	default:
		return "view"
	}
}

// withoutID copies fields with the id key removed, so update payloads
// never duplicate the path id in the body.
func withoutID(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if key == "id" {
			continue
		}
		out[key] = value
	}
	return out
}
