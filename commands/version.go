package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
)

var VersionCmd = Version{}

// Version displays the wstg-upload version.
type Version struct {
	stdout io.Writer
}

func (cmd *Version) Name() string {
	return "version"
}

func (cmd *Version) Description() string {
	return "Displays the current version"
}

func (cmd *Version) Usage() string {
	return ""
}

func (cmd *Version) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s version\n", APP)
	fmt.Println()
	fmt.Printf("  Displays the %s version in the format v<major>.<minor>.<patch> e.g. %s\n", APP, VERSION)
	fmt.Println()
}

func (cmd *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (cmd *Version) Execute(...any) error {
	w := cmd.stdout
	if w == nil {
		w = os.Stdout
	}

	_, err := fmt.Fprintln(w, VERSION)

	return err
}
