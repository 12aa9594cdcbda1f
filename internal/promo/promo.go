// Package promo resolves the per-channel account-opening link. The links are
// operator-maintained: a YAML file can override the built-in table without a
// redeploy.
package promo

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"axiselect.app/web/internal/channel"
)

const defaultJoinURL = "https://click.connectforedge.com/cn/live-account-v1?promocode=8843040"

// Links maps channel codes to join URLs. Channels without an entry fall back
// to Default.
type Links struct {
	Default  string            `yaml:"default"`
	Channels map[string]string `yaml:"channels"`
}

type fileFormat struct {
	Join Links `yaml:"join"`
}

// BuiltIn returns the compiled-in link table.
func BuiltIn() Links {
	return Links{
		Default: defaultJoinURL,
		Channels: map[string]string{
			string(channel.ChannelA): defaultJoinURL,
			string(channel.ChannelB): "https://click.connectforedge.com/cn/live-account-v1?promocode=8853438",
		},
	}
}

// Load reads the link table from path, merging over the built-in defaults.
// An empty path returns the built-ins unchanged.
func Load(path string) (Links, error) {
	links := BuiltIn()
	if strings.TrimSpace(path) == "" {
		return links, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Links{}, fmt.Errorf("read promo links: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Links{}, fmt.Errorf("parse promo links %s: %w", path, err)
	}
	if f.Join.Default != "" {
		links.Default = f.Join.Default
	}
	for code, u := range f.Join.Channels {
		if u != "" {
			links.Channels[code] = u
		}
	}
	return links, nil
}

// JoinURL returns the account-opening link for c.
func (l Links) JoinURL(c channel.Code) string {
	if u, ok := l.Channels[string(c)]; ok && u != "" {
		return u
	}
	return l.Default
}
