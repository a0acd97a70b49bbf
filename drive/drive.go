// Package drive wraps the subset of the Google Drive v3 API used to publish a
// file that already exists in Drive: replacing its content, renaming it and
// sharing it.
package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Permission is a Drive permission grant e.g. {anyone, reader}.
type Permission struct {
	ID   string
	Type string
	Role string
}

// Revision identifies a file revision and when it was last modified.
type Revision struct {
	ID       string
	Modified time.Time
}

// Client is a Google Drive client bound to an authorised HTTP client.
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client that issues requests through the supplied
// (OAuth2 authorised) HTTP client. Additional options are passed through to the
// underlying service e.g. option.WithEndpoint.
func NewClient(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Client, error) {
	options := append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	service, err := drive.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Google Drive client (%w)", err)
	}

	return &Client{
		service: service,
	}, nil
}

// Upload replaces the content of an existing file. The file metadata is left
// unchanged.
func (c *Client) Upload(ctx context.Context, fileID string, content io.Reader, contentType string) error {
	if fileID == "" {
		return fmt.Errorf("file ID is required")
	}

	if content == nil {
		return fmt.Errorf("file content is required")
	}

	_, err := c.service.Files.Update(fileID, &drive.File{}).
		Context(ctx).
		Media(content, googleapi.ContentType(contentType)).
		Fields("id").
		Do()
	if err != nil {
		return fmt.Errorf("failed to upload content to file %s (%w)", fileID, err)
	}

	return nil
}

// Rename fetches the current file metadata and then updates the file name
// (the Drive v3 equivalent of the title). Returns the name the file had before
// the update.
func (c *Client) Rename(ctx context.Context, fileID string, title string) (string, error) {
	if fileID == "" {
		return "", fmt.Errorf("file ID is required")
	}

	if title == "" {
		return "", fmt.Errorf("file title is required")
	}

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("id, name").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to get file %s (%w)", fileID, err)
	}

	previous := file.Name
	update := drive.File{
		Name: title,
	}

	if _, err := c.service.Files.Update(fileID, &update).Context(ctx).Fields("id, name").Do(); err != nil {
		return previous, fmt.Errorf("failed to rename file %s (%w)", fileID, err)
	}

	return previous, nil
}

// Share adds a permission to a file and returns the permission as created by
// Drive.
func (c *Client) Share(ctx context.Context, fileID string, permission Permission) (*Permission, error) {
	if fileID == "" {
		return nil, fmt.Errorf("file ID is required")
	}

	if permission.Type == "" {
		return nil, fmt.Errorf("permission type is required")
	}

	if permission.Role == "" {
		return nil, fmt.Errorf("permission role is required")
	}

	rq := drive.Permission{
		Type: permission.Type,
		Role: permission.Role,
	}

	created, err := c.service.Permissions.Create(fileID, &rq).
		Context(ctx).
		Fields("id, type, role").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to share file %s (%w)", fileID, err)
	}

	return &Permission{
		ID:   created.Id,
		Type: created.Type,
		Role: created.Role,
	}, nil
}

// LatestRevision walks the file revision list and returns the most recently
// modified revision.
func (c *Client) LatestRevision(ctx context.Context, fileID string) (*Revision, error) {
	page := ""
	latest := Revision{}

	for {
		call := c.service.Revisions.List(fileID).Context(ctx).Fields("nextPageToken, revisions(id, modifiedTime)")
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list revisions for file %s (%w)", fileID, err)
		}

		for _, revision := range revisions.Revisions {
			modified, err := time.Parse(time.RFC3339, revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.Modified.Before(modified) {
				latest.ID = revision.Id
				latest.Modified = modified
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileID)
	}

	return &latest, nil
}
