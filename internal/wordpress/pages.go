package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListPages returns pages matching the optional filter.
func (c *Client) ListPages(ctx context.Context, filter map[string]interface{}) ([]Page, error) {
	var pages []Page
	if err := c.Get(ctx, "pages", filter, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPage fetches one page by id.
func (c *Client) GetPage(ctx context.Context, id int, viewContext string) (*Page, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	query := map[string]interface{}{"context": normalizeViewContext(viewContext)}
	var page Page
	if err := c.Get(ctx, fmt.Sprintf("pages/%d", id), query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreatePage creates a page from the given fields.
func (c *Client) CreatePage(ctx context.Context, fields map[string]interface{}) (*Page, error) {
	var page Page
	if err := c.Post(ctx, "pages", fields, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage updates a page; the id travels in the path only.
func (c *Client) UpdatePage(ctx context.Context, id int, fields map[string]interface{}) (*Page, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var page Page
	if err := c.Put(ctx, fmt.Sprintf("pages/%d", id), withoutID(fields), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DeletePage deletes a page, to trash by default.
func (c *Client) DeletePage(ctx context.Context, id int, force bool) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var result json.RawMessage
	query := map[string]interface{}{"force": force}
	if err := c.Delete(ctx, fmt.Sprintf("pages/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}
