package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadResult is the upload endpoint's data payload.
type UploadResult struct {
	URL string `json:"url"`
}

// UploadImage sends one image file as multipart form data and returns the
// remote URL assigned to it. The form field name is fixed by the platform.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return UploadResult{}, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return UploadResult{}, fmt.Errorf("reading image %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/upload", nil), &buf)
	if err != nil {
		return UploadResult{}, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var res UploadResult
	if err := c.send(req, &res); err != nil {
		return UploadResult{}, err
	}
	return res, nil
}
