package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/uhppoted/uhppoted-lib/command"

	"github.com/owasp/wstg-upload/commands"
)

var cli = []uhppoted.Command{
	&commands.UploadCmd,
	&commands.AuthoriseCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	cmd, err := parse()
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = cmd.Execute(ctx, &options)
	cancel()

	if errors.Is(err, commands.ErrUsage) {
		os.Exit(1)
	} else if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

// parse dispatches named commands (and 'help') through the uhppoted command
// parser and treats anything else as the positional arguments for 'upload'
// i.e. wstg-upload <drive-file-id> [version].
func parse() (uhppoted.Command, error) {
	args := flag.Args()

	if len(args) > 0 {
		if args[0] == help.Name() {
			return uhppoted.Parse(cli, nil, help)
		}

		for _, c := range cli {
			if c.Name() == args[0] {
				return uhppoted.Parse(cli, nil, help)
			}
		}
	}

	if err := commands.UploadCmd.FlagSet().Parse(args); err != nil {
		return nil, err
	}

	return &commands.UploadCmd, nil
}
