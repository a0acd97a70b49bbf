package commands

import (
	"io"

	"golang.org/x/net/context"

	"github.com/owasp/wstg-upload/drive"
)

// dryrun stands in for Google Drive with --dry-run, logging the requests that
// would have been made.
type dryrun struct {
}

func (d dryrun) Upload(ctx context.Context, fileID string, content io.Reader, contentType string) error {
	n, err := io.Copy(io.Discard, content)
	if err != nil {
		return err
	}

	infof("DRY RUN  upload %v bytes (%v) to %v", n, contentType, fileID)

	return nil
}

func (d dryrun) Rename(ctx context.Context, fileID string, title string) (string, error) {
	infof("DRY RUN  rename %v to '%v'", fileID, title)

	return "", nil
}

func (d dryrun) Share(ctx context.Context, fileID string, permission drive.Permission) (*drive.Permission, error) {
	infof("DRY RUN  share %v with %v (%v)", fileID, permission.Type, permission.Role)

	return &permission, nil
}
