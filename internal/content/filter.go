// Package content holds the channel-visibility predicate shared by every
// fetcher that deals in channel-scoped rows (support teams, more tips, menu
// items).
package content

import (
	"axiselect.app/web/internal/channel"
)

// Scoped is any record that may be restricted to a single channel. A record
// with ChannelSpecific()==false is shown under every channel regardless of
// what ChannelCode() returns.
type Scoped interface {
	ChannelSpecific() bool
	ChannelCode() string
}

// Visible filters items down to those shown under the current channel:
// every non-specific record plus the specific records matching it, original
// relative order preserved.
func Visible[T Scoped](items []T, current channel.Code) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !it.ChannelSpecific() || it.ChannelCode() == string(current) {
			out = append(out, it)
		}
	}
	return out
}

// Shared filters items down to those shown under every channel, used when no
// channel is known.
func Shared[T Scoped](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !it.ChannelSpecific() {
			out = append(out, it)
		}
	}
	return out
}
