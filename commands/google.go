package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const DRIVE = "https://www.googleapis.com/auth/drive"

// authorize returns an HTTP client authorised for the scope with the cached
// OAuth2 token, falling back to the console consent flow (and caching the new
// token) if there is no usable cached token.
func authorize(ctx context.Context, credentials, scope, workdir string, console io.Reader) (*http.Client, error) {
	config, err := oauthConfig(credentials, scope)
	if err != nil {
		return nil, err
	}

	tokens := tokensFile(credentials, scope, workdir)
	token, err := tokenFromFile(tokens)
	if err != nil {
		infof("No cached authorisation token (%v)", err)

		if token, err = getTokenFromWeb(ctx, config, console); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return config.Client(ctx, token), nil
}

func oauthConfig(credentials, scope string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, fmt.Errorf("invalid OAuth2 credentials file %v (%w)", credentials, err)
	}

	return config, nil
}

// tokensFile returns the token cache for the credentials, named for the
// credentials file and the API scope e.g. .google/credentials.drive.
func tokensFile(credentials, scope, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, DRIVE):
		return filepath.Join(workdir, fmt.Sprintf("%s.drive", name))

	default:
		return filepath.Join(workdir, fmt.Sprintf("%s.tokens", name))
	}
}

// Request a token from the web, then returns the retrieved token.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config, console io.Reader) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code: \n%v\n", authURL)

	var code string
	if _, err := fmt.Fscan(console, &code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	infof("Saving authorisation token to %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth2 token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
