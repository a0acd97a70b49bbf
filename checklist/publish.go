// Package checklist publishes the WSTG checklist workbook to an existing Google
// Drive file.
package checklist

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/owasp/wstg-upload/drive"
)

// Drive is the set of remote operations needed to publish the checklist.
// Implemented by drive.Client.
type Drive interface {
	Upload(ctx context.Context, fileID string, content io.Reader, contentType string) error
	Rename(ctx context.Context, fileID string, title string) (string, error)
	Share(ctx context.Context, fileID string, permission drive.Permission) (*drive.Permission, error)
}

// Public grants read-only access to anyone.
var Public = drive.Permission{
	Type: "anyone",
	Role: "reader",
}

// Published summarises a completed publish.
type Published struct {
	FileID     string
	Previous   string
	Title      string
	MimeType   string
	Permission drive.Permission
}

// Publish uploads the workbook at path as the content of the Drive file, renames
// the file to title and shares it publicly, in that order. A failed step aborts the publish: nothing is rolled back and the later
// steps are not attempted.
func Publish(ctx context.Context, gdrive Drive, fileID string, title string, path string) (*Published, error) {
	if fileID == "" {
		return nil, fmt.Errorf("missing Google Drive file ID")
	}

	if title == "" {
		return nil, fmt.Errorf("missing Google Drive file title")
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read checklist %s (%w)", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	published := Published{
		FileID:   fileID,
		Title:    title,
		MimeType: mime.String(),
	}

	if err := gdrive.Upload(ctx, fileID, f, published.MimeType); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	if published.Previous, err = gdrive.Rename(ctx, fileID, published.Title); err != nil {
		return nil, fmt.Errorf("rename: %w", err)
	}

	permission, err := gdrive.Share(ctx, fileID, Public)
	if err != nil {
		return nil, fmt.Errorf("share: %w", err)
	} else if permission != nil {
		published.Permission = *permission
	}

	return &published, nil
}
