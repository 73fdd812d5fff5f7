package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListCategories returns category terms matching the optional filter.
func (c *Client) ListCategories(ctx context.Context, filter map[string]interface{}) ([]Category, error) {
	var categories []Category
	if err := c.Get(ctx, "categories", filter, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches one category term by id.
func (c *Client) GetCategory(ctx context.Context, id int) (*Category, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var category Category
	if err := c.Get(ctx, fmt.Sprintf("categories/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a category term.
func (c *Client) CreateCategory(ctx context.Context, fields map[string]interface{}) (*Category, error) {
	var category Category
	if err := c.Post(ctx, "categories", fields, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category term; the id travels in the path only.
func (c *Client) UpdateCategory(ctx context.Context, id int, fields map[string]interface{}) (*Category, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var category Category
	if err := c.Put(ctx, fmt.Sprintf("categories/%d", id), withoutID(fields), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category term. Terms have no trash state, so
// WordPress requires force=true; the default mirrors the other deletes
// and lets the remote API report the constraint.
func (c *Client) DeleteCategory(ctx context.Context, id int, force bool) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var result json.RawMessage
	query := map[string]interface{}{"force": force}
	if err := c.Delete(ctx, fmt.Sprintf("categories/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListTags returns tag terms matching the optional filter.
func (c *Client) ListTags(ctx context.Context, filter map[string]interface{}) ([]Tag, error) {
	var tags []Tag
	if err := c.Get(ctx, "tags", filter, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag fetches one tag term by id.
func (c *Client) GetTag(ctx context.Context, id int) (*Tag, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var tag Tag
	if err := c.Get(ctx, fmt.Sprintf("tags/%d", id), nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a tag term.
func (c *Client) CreateTag(ctx context.Context, fields map[string]interface{}) (*Tag, error) {
	var tag Tag
	if err := c.Post(ctx, "tags", fields, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag updates a tag term; the id travels in the path only.
func (c *Client) UpdateTag(ctx context.Context, id int, fields map[string]interface{}) (*Tag, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var tag Tag
	if err := c.Put(ctx, fmt.Sprintf("tags/%d", id), withoutID(fields), &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag deletes a tag term.
func (c *Client) DeleteTag(ctx context.Context, id int, force bool) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var result json.RawMessage
	query := map[string]interface{}{"force": force}
	if err := c.Delete(ctx, fmt.Sprintf("tags/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}
