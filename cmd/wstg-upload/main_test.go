package main

import (
	"flag"
	"testing"

	"github.com/owasp/wstg-upload/commands"
)

func commandLine(t *testing.T, args ...string) {
	t.Helper()

	saved := flag.CommandLine
	t.Cleanup(func() {
		flag.CommandLine = saved
	})

	flag.CommandLine = flag.NewFlagSet("wstg-upload", flag.ContinueOnError)
	flag.CommandLine.Bool("debug", false, "Enable debugging information")

	if err := flag.CommandLine.Parse(args); err != nil {
		t.Fatalf("Error parsing command line %v (%v)", args, err)
	}
}

func TestParseWithPositionalArguments(t *testing.T) {
	commandLine(t, "--debug", "abc123", "1.2")

	cmd, err := parse()
	if err != nil {
		t.Fatalf("Unexpected error parsing command line (%v)", err)
	}

	if cmd != &commands.UploadCmd {
		t.Errorf("Incorrect command - expected 'upload', got %v", cmd.Name())
	}
}

func TestParseWithNamedCommand(t *testing.T) {
	commandLine(t, "version")

	cmd, err := parse()
	if err != nil {
		t.Fatalf("Unexpected error parsing command line (%v)", err)
	}

	if cmd != &commands.VersionCmd {
		t.Errorf("Incorrect command - expected 'version', got %v", cmd.Name())
	}
}

func TestParseWithoutArguments(t *testing.T) {
	commandLine(t)

	cmd, err := parse()
	if err != nil {
		t.Fatalf("Unexpected error parsing command line (%v)", err)
	}

	if cmd != &commands.UploadCmd {
		t.Errorf("Incorrect command - expected 'upload', got %v", cmd.Name())
	}
}
