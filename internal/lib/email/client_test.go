package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, templateDir string) *Client {
	t.Helper()
	logger := zerolog.Nop()
	return &Client{templateDir: templateDir, logger: &logger}
}

func TestRender_WelcomeTemplate(t *testing.T) {
	c := newTestClient(t, filepath.Join("..", "..", "..", DefaultTemplateDir))

	body, err := c.render(TemplateWelcome, map[string]string{
		"UserName":  "Ann",
		"UserEmail": "ann@x.com",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Welcome, Ann!")
	assert.Contains(t, body, "ann@x.com")
}

func TestRender_EscapesHTML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.html"), []byte("<p>{{.UserName}}</p>"), 0o600))
	c := newTestClient(t, dir)

	body, err := c.render(TemplateWelcome, map[string]string{"UserName": "<script>"})
	require.NoError(t, err)

	assert.Equal(t, "<p>&lt;script&gt;</p>", body)
}

func TestRender_MissingTemplate(t *testing.T) {
	c := newTestClient(t, t.TempDir())

	_, err := c.render(TemplateWelcome, nil)

	assert.ErrorContains(t, err, "failed to parse email template welcome")
}
