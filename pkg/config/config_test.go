package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/mailer"
)

func TestLoad_FirstRunDefaults(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, compiler.DefaultFooterColor, cfg.Identity.FooterColor)
	require.Equal(t, mailer.DefaultSMTPHost, cfg.SMTPHost)
	require.Equal(t, mailer.DefaultSMTPPort, cfg.SMTPPort)
	require.Empty(t, cfg.SMTPUsername)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	cfg := Default()
	cfg.Identity.Name = "Ada"
	cfg.Identity.Emails = []string{"ada@example.org"}
	cfg.SMTPUsername = "ada@gmail.com"
	cfg.WorkerURL = "https://worker.example.com"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())
	t.Setenv("SHIRYOKU_SMTP_PASSWORD", "from-env")
	t.Setenv("SHIRYOKU_API_SECRET", "secret-from-env")

	cfg := Default()
	cfg.SMTPAppPassword = "from-file"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env", loaded.SMTPAppPassword)
	require.Equal(t, "secret-from-env", loaded.APISecret)
}

func TestLoad_EmptyFooterColorGetsDefault(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	cfg := Default()
	cfg.Identity.FooterColor = ""
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, compiler.DefaultFooterColor, loaded.Identity.FooterColor)
}

func TestDraft_RoundTripAndClear(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	// No draft yet: empty value, no error.
	draft, err := LoadDraft()
	require.NoError(t, err)
	require.Empty(t, draft.Recipient)

	draft = compiler.Draft{
		Recipient:   "dest@example.com",
		Subject:     "s",
		Body:        "**b**",
		Attachments: []string{"/tmp/a.pdf"},
	}
	require.NoError(t, SaveDraft(draft))

	loaded, err := LoadDraft()
	require.NoError(t, err)
	require.Equal(t, draft, loaded)

	require.NoError(t, ClearDraft())
	loaded, err = LoadDraft()
	require.NoError(t, err)
	require.Empty(t, loaded.Recipient)

	// Clearing twice is fine.
	require.NoError(t, ClearDraft())
}
