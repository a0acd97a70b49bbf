package commands

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
)

var AuthoriseCmd = Authorise{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	port:        8085,
	debug:       false,
}

type Authorise struct {
	workdir     string
	credentials string
	port        uint
	debug       bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises wstg-upload to update and share files in Google Drive"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Authorises wstg-upload to update and share files in Google Drive and caches the authorisation token")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    wstg-upload authorise --credentials "credentials.json" --port 8085`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.UintVar(&cmd.port, "port", cmd.port, "Local port for the OAuth2 redirect")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	ctx, options := unpack(args...)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if cmd.port == 0 || cmd.port > 65535 {
		return fmt.Errorf("invalid --port %v", cmd.port)
	}

	config, err := oauthConfig(cmd.credentials, DRIVE)
	if err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	tokens := tokensFile(cmd.credentials, DRIVE, filepath.Join(cmd.workdir, ".google"))

	if err := authenticate(ctx, config, cmd.port, tokens); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	return nil
}

// authenticate runs the OAuth2 consent flow with a loopback redirect listener
// and saves the issued token.
func authenticate(ctx context.Context, config *oauth2.Config, port uint, tokens string) error {
	state, err := nonce()
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return err
	}

	config.RedirectURL = redirectURL(port)

	authorised := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/", callback(state, authorised))

	srv := &http.Server{
		Handler: mux,
	}

	go func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			warnf("%v", err)
		}
	}()

	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			warnf("%v", err)
		}
	}()

	// ... open OAuth2 URL in browser
	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if err := browse(url); err != nil {
		fmt.Println("Could not open the authorisation page in your browser - please open the following link manually:")
		fmt.Println()
		fmt.Printf("  %v\n", url)
		fmt.Println()
	}

	// ... wait for authorisation
	select {
	case <-ctx.Done():
		fmt.Printf("\n.. cancelled\n\n")
		return ctx.Err()

	case code := <-authorised:
		token, err := config.Exchange(ctx, code)
		if err != nil {
			return fmt.Errorf("unable to retrieve token from web (%w)", err)
		}

		return saveToken(tokens, token)
	}
}

// redirectURL must name the same IPv4 loopback address the listener binds to.
func redirectURL(port uint) string {
	return fmt.Sprintf("http://127.0.0.1:%d/", port)
}

func callback(state string, authorised chan<- string) http.HandlerFunc {
	return func(w http.ResponseWriter, rq *http.Request) {
		if rq.FormValue("state") != state {
			http.Error(w, "Invalid authorisation state", http.StatusBadRequest)
			return
		}

		if e := rq.FormValue("error"); e != "" {
			http.Error(w, fmt.Sprintf("Authorisation refused (%v)", e), http.StatusForbidden)
			return
		}

		code := rq.FormValue("code")
		if code == "" {
			http.Error(w, "Missing authorisation code", http.StatusBadRequest)
			return
		}

		select {
		case authorised <- code:
			fmt.Fprintln(w, "wstg-upload has been authorised - you can close this window")
		default:
			fmt.Fprintln(w, "wstg-upload has already been authorised")
		}
	}
}

func nonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

func browse(url string) error {
	var command *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", url)
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		command = exec.Command("xdg-open", url)
	}

	return command.Start()
}
