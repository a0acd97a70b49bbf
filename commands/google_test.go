package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const credentials = `{
  "installed": {
    "client_id": "123456789-abcdefg.apps.googleusercontent.com",
    "project_id": "wstg-checklist",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "client_secret": "qwerty",
    "redirect_uris": ["http://localhost"]
  }
}`

func TestTokensFile(t *testing.T) {
	tests := []struct {
		scope    string
		expected string
	}{
		{DRIVE, filepath.Join("work", ".google", "credentials.drive")},
		{"https://www.googleapis.com/auth/spreadsheets", filepath.Join("work", ".google", "credentials.tokens")},
	}

	for _, test := range tests {
		file := tokensFile(filepath.Join("etc", "credentials.json"), test.scope, filepath.Join("work", ".google"))
		if file != test.expected {
			t.Errorf("Incorrect tokens file for scope %v\n   expected: %v\n   got:      %v", test.scope, test.expected, file)
		}
	}
}

func TestOAuthConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(credentials), 0600))

	config, err := oauthConfig(path, DRIVE)
	require.NoError(t, err)

	assert.Equal(t, "123456789-abcdefg.apps.googleusercontent.com", config.ClientID)
	assert.Equal(t, []string{DRIVE}, config.Scopes)
	assert.Equal(t, "http://localhost", config.RedirectURL)
}

func TestOAuthConfigWithInvalidCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"web":`), 0600))

	_, err := oauthConfig(path, DRIVE)

	assert.Error(t, err)
}

func TestTokenCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".google", "credentials.drive")
	token := oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC),
	}

	require.NoError(t, saveToken(path, &token))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	cached, err := tokenFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, token.AccessToken, cached.AccessToken)
	assert.Equal(t, token.RefreshToken, cached.RefreshToken)
	assert.True(t, token.Expiry.Equal(cached.Expiry))
}

func TestTokenFromMissingFile(t *testing.T) {
	_, err := tokenFromFile(filepath.Join(t.TempDir(), "credentials.drive"))

	assert.Error(t, err)
}
