package promo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axiselect.app/web/internal/channel"
)

func TestBuiltInLinks(t *testing.T) {
	l := BuiltIn()
	assert.Contains(t, l.JoinURL(channel.ChannelA), "promocode=8843040")
	assert.Contains(t, l.JoinURL(channel.ChannelB), "promocode=8853438")
	// channelC has no dedicated link yet and rides the default.
	assert.Equal(t, l.Default, l.JoinURL(channel.ChannelC))
}

func TestLoadEmptyPathKeepsBuiltIns(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BuiltIn(), l)
}

func TestLoadOverridesMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
join:
  default: https://example.com/open
  channels:
    channelC: https://example.com/open?promocode=999
`), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/open", l.Default)
	assert.Equal(t, "https://example.com/open?promocode=999", l.JoinURL(channel.ChannelC))
	// Untouched channels keep their built-in links.
	assert.Contains(t, l.JoinURL(channel.ChannelA), "promocode=8843040")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte("join: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
