package tui

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func TestKeyFingerprint(t *testing.T) {
	assert.Equal(t, "none", keyFingerprint(nil))

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)

	fp := keyFingerprint(key)
	assert.True(t, strings.HasPrefix(fp, "SHA256:"), fp)
	assert.Equal(t, fp, keyFingerprint(key))
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.DBPath = ":memory:"

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown() })

	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.NotNil(t, srv.store)
	assert.DirExists(t, filepath.Dir(cfg.HostKeyPath))
}
