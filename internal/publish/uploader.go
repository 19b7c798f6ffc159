// Package publish drives the article submission flow: image upload, payload
// shaping, and create-versus-update dispatch.
package publish

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/geek-project/geekctl/internal/api"
	"github.com/geek-project/geekctl/internal/cover"
)

// uploadParallelism bounds concurrent image uploads.
const uploadParallelism = 3

// UploadAPI is the slice of the API client the uploader depends on.
type UploadAPI interface {
	UploadImage(ctx context.Context, filename string, content io.Reader) (api.UploadResult, error)
}

// Uploader pushes local image files to the platform's upload endpoint.
type Uploader struct {
	client UploadAPI
	logger *slog.Logger
}

// NewUploader creates an uploader.
func NewUploader(client UploadAPI, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Uploader{client: client, logger: logger}
}

// UploadAll resolves a mixed list of image references into cover images,
// preserving argument order. Local paths are uploaded with bounded
// parallelism; http(s) URLs are taken as-is (the already-uploaded case).
// The first failure aborts the remaining uploads and propagates; images
// uploaded before the failure are not cleaned up.
func (u *Uploader) UploadAll(ctx context.Context, refs []string) ([]cover.Image, error) {
	results := make([]cover.Image, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadParallelism)

	for i, ref := range refs {
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
			results[i] = cover.Image{URL: ref}
			continue
		}

		i, ref := i, ref
		g.Go(func() error {
			img, err := u.uploadFile(ctx, ref)
			if err != nil {
				return err
			}
			results[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (u *Uploader) uploadFile(ctx context.Context, path string) (cover.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return cover.Image{}, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	res, err := u.client.UploadImage(ctx, filepath.Base(path), f)
	if err != nil {
		return cover.Image{}, fmt.Errorf("uploading %s: %w", path, err)
	}

	u.logger.Debug("image uploaded", "path", path, "url", res.URL)
	return cover.Image{UploadURL: res.URL}, nil
}
