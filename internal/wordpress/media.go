package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MaxUploadSize is the ceiling for media uploads, enforced before any
// network I/O.
const MaxUploadSize = 100 << 20 // 100 MiB

// uploadTimeout is the default timeout for multipart uploads. Large
// bodies need minutes, not the seconds a regular call gets.
const uploadTimeout = 5 * time.Minute

// UploadMediaRequest describes one media upload: the local file plus
// optional metadata fields sent alongside it.
type UploadMediaRequest struct {
	FilePath    string
	Title       string
	AltText     string
	Caption     string
	Description string
	PostID      int
}

// ListMedia returns media items matching the optional filter.
func (c *Client) ListMedia(ctx context.Context, filter map[string]interface{}) ([]MediaItem, error) {
	var items []MediaItem
	if err := c.Get(ctx, "media", filter, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMedia fetches one media item by id.
func (c *Client) GetMedia(ctx context.Context, id int) (*MediaItem, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var item MediaItem
	if err := c.Get(ctx, fmt.Sprintf("media/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMedia updates a media item's metadata; the id travels in the
// path only.
func (c *Client) UpdateMedia(ctx context.Context, id int, fields map[string]interface{}) (*MediaItem, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var item MediaItem
	if err := c.Put(ctx, fmt.Sprintf("media/%d", id), withoutID(fields), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMedia deletes a media item, to trash by default.
func (c *Client) DeleteMedia(ctx context.Context, id int, force bool) (json.RawMessage, error) {
	if _, err := ValidateID(id, "id"); err != nil {
		return nil, err
	}
	var result json.RawMessage
	query := map[string]interface{}{"force": force}
	if err := c.Delete(ctx, fmt.Sprintf("media/%d", id), query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UploadMedia uploads a local file to the media library.
//
// The file is opened once and stat'ed through the handle, so the size
// check and the upload read the same file even if the path is swapped
// underneath. Oversized files are rejected before any network call. The
// multipart writer supplies the content type (with boundary); the JSON
// default must not apply here. Uploads stream the body and are therefore
// not retried.
func (c *Client) UploadMedia(ctx context.Context, upload UploadMediaRequest) (*MediaItem, error) {
	if err := ValidateRequired(upload.FilePath, "file_path"); err != nil {
		return nil, err
	}

	file, err := os.Open(upload.FilePath)
	if err != nil {
		return nil, &APIError{
			Message: fmt.Sprintf("could not open %s: %s", upload.FilePath, err),
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidParameters,
		}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &APIError{
			Message: fmt.Sprintf("could not stat %s: %s", upload.FilePath, err),
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidParameters,
		}
	}
	if info.Size() > MaxUploadSize {
		return nil, &APIError{
			Message: fmt.Sprintf("file %s is %d bytes, above the %d byte upload limit",
				upload.FilePath, info.Size(), MaxUploadSize),
			Status: http.StatusBadRequest,
			Code:   CodeParameterTooLarge,
		}
	}

	reader, writer := io.Pipe()
	form := multipart.NewWriter(writer)

	go func() {
		err := writeUploadForm(form, file, filepath.Base(upload.FilePath), upload)
		if closeErr := form.Close(); err == nil {
			err = closeErr
		}
		writer.CloseWithError(err)
	}()

	var item MediaItem
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "media",
		stream:      reader,
		contentType: form.FormDataContentType(),
		timeout:     uploadTimeout,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func writeUploadForm(form *multipart.Writer, file io.Reader, filename string, upload UploadMediaRequest) error {
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}

	fields := map[string]string{
		"title":       upload.Title,
		"alt_text":    upload.AltText,
		"caption":     upload.Caption,
		"description": upload.Description,
	}
	if upload.PostID > 0 {
		fields["post"] = strconv.Itoa(upload.PostID)
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := form.WriteField(name, value); err != nil {
			return err
		}
	}
	return nil
}
