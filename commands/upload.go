package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"

	"github.com/owasp/wstg-upload/checklist"
	"github.com/owasp/wstg-upload/drive"
)

// ErrUsage is returned when the command line is missing a required argument.
// The usage has already been printed.
var ErrUsage = errors.New("invalid command line")

var UploadCmd = Upload{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	checklist:   DEFAULT_CHECKLIST,
	dryrun:      false,
	debug:       false,
}

type Upload struct {
	workdir     string
	credentials string
	checklist   string
	dryrun      bool
	debug       bool

	flagset *flag.FlagSet
	stdout  io.Writer
	stdin   io.Reader
}

type revisions interface {
	LatestRevision(ctx context.Context, fileID string) (*drive.Revision, error)
}

func (cmd *Upload) Name() string {
	return "upload"
}

func (cmd *Upload) Description() string {
	return "Uploads the WSTG checklist to Google Drive and shares it publicly"
}

func (cmd *Upload) Usage() string {
	return "<drive-file-id> [version]"
}

func (cmd *Upload) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [upload] [options] <drive-file-id> [version]\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the content of an existing Google Drive file with the WSTG checklist workbook, renames")
	fmt.Println("  it to WSTG-Checklist[-<version>].xlsx and grants read access to anyone")
	fmt.Println()

	helpOptions(cmd.flags())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    wstg-upload 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms 4.2`)
	fmt.Println(`    wstg-upload --debug upload --credentials "credentials.json" --checklist "checklists/checklist.xlsx" 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms`)
	fmt.Println()
}

func (cmd *Upload) FlagSet() *flag.FlagSet {
	cmd.flagset = cmd.flags()

	return cmd.flagset
}

func (cmd *Upload) flags() *flag.FlagSet {
	flagset := flag.NewFlagSet("upload", flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.checklist, "checklist", cmd.checklist, "Checklist workbook to upload")
	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Validates the checklist and reports the changes without updating Google Drive")

	return flagset
}

func (cmd *Upload) Execute(args ...any) error {
	ctx, options := unpack(args...)

	cmd.debug = options.Debug

	var positional []string
	if cmd.flagset != nil {
		positional = cmd.flagset.Args()
	}

	if len(positional) < 1 || strings.TrimSpace(positional[0]) == "" {
		cmd.usage()
		return ErrUsage
	}

	fileID := positional[0]
	title := checklist.Title("", false)
	if len(positional) > 1 {
		title = checklist.Title(positional[1], true)
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	if err := checklist.Validate(cmd.checklist); err != nil {
		return err
	}

	if cmd.debug {
		debugf("Checklist - file:%s  drive ID:%s  title:%s", cmd.checklist, fileID, title)
	}

	gdrive, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	return cmd.publish(ctx, gdrive, fileID, title)
}

func (cmd *Upload) validate() error {
	if strings.TrimSpace(cmd.checklist) == "" {
		return fmt.Errorf("--checklist is a required option")
	}

	if !cmd.dryrun && strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	return nil
}

func (cmd *Upload) connect(ctx context.Context) (checklist.Drive, error) {
	if cmd.dryrun {
		return dryrun{}, nil
	}

	stdin := cmd.stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	client, err := authorize(ctx, cmd.credentials, DRIVE, filepath.Join(cmd.workdir, ".google"), stdin)
	if err != nil {
		return nil, fmt.Errorf("Google Drive authentication/authorization error (%w)", err)
	}

	gdrive, err := drive.NewClient(ctx, client)
	if err != nil {
		return nil, err
	}

	return gdrive, nil
}

func (cmd *Upload) publish(ctx context.Context, gdrive checklist.Drive, fileID, title string) error {
	published, err := checklist.Publish(ctx, gdrive, fileID, title, cmd.checklist)
	if err != nil {
		return err
	}

	if cmd.dryrun {
		return nil
	}

	infof("Uploaded %v to Google Drive file %v", cmd.checklist, published.FileID)
	infof("Renamed '%v' to '%v'", published.Previous, published.Title)
	infof("Shared %v with %v (%v)", published.Title, published.Permission.Type, published.Permission.Role)

	if cmd.debug {
		if r, ok := gdrive.(revisions); ok {
			if revision, err := r.LatestRevision(ctx, fileID); err != nil {
				warnf("%v", err)
			} else {
				debugf("Revision - ID:%v  modified:%v", revision.ID, revision.Modified.Format("2006-01-02 15:04:05"))
			}
		}
	}

	return nil
}

func (cmd *Upload) usage() {
	w := cmd.stdout
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintf(w, "Usage: %s [--debug] <drive-file-id> [version]\n", APP)
	fmt.Fprintf(w, "  Uploads %s to the Google Drive file as %s and shares it publicly\n", cmd.checklist, checklist.Title("<version>", true))
}
