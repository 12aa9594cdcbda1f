package channel

import (
	"net/url"
	"strings"
)

// Code identifies one of the three promo/attribution channels. The literal
// values match the backend's channel_code column and the Android build
// flavours, so they travel unmodified across the wire.
type Code string

const (
	ChannelA Code = "channelA"
	ChannelB Code = "channelB"
	ChannelC Code = "channelC"
)

// Default is the hard fallback when no other source yields a channel.
const Default = ChannelA

// versionNumber mirrors appVersionNumber in the Android build so the web
// version label stays in lockstep with the app releases.
const versionNumber = "1.1.3"

// Marker query parameters. Presence alone selects the channel; the value is
// ignored. legacyParam is the older value-carrying form kept for inbound
// links that predate the marker scheme.
const (
	markerA     = "axiselectweba"
	markerB     = "axiselectwebb"
	markerC     = "axiselectwebc"
	legacyParam = "channel"
)

// Parse returns the Code for one of the three valid literals. Anything else,
// including empty input, reports ok=false so callers fall through to the next
// resolution tier.
func Parse(s string) (Code, bool) {
	switch Code(strings.TrimSpace(s)) {
	case ChannelA:
		return ChannelA, true
	case ChannelB:
		return ChannelB, true
	case ChannelC:
		return ChannelC, true
	}
	return "", false
}

// Valid reports whether c is one of the three recognized channels.
func (c Code) Valid() bool {
	_, ok := Parse(string(c))
	return ok
}

// FromQuery inspects query parameters for a channel marker. The new-format
// markers win over the legacy parameter, checked A, then B, then C; the first
// match is authoritative even when several markers are present.
func FromQuery(q url.Values) (Code, bool) {
	if q.Has(markerA) {
		return ChannelA, true
	}
	if q.Has(markerB) {
		return ChannelB, true
	}
	if q.Has(markerC) {
		return ChannelC, true
	}
	return Parse(q.Get(legacyParam))
}

// Marker returns the presence-only query parameter selecting c.
func (c Code) Marker() string {
	switch c {
	case ChannelB:
		return markerB
	case ChannelC:
		return markerC
	default:
		return markerA
	}
}

// StripMarkers removes every recognized channel parameter from q, legacy form
// included. Used when rewriting a URL to carry exactly one marker.
func StripMarkers(q url.Values) {
	q.Del(markerA)
	q.Del(markerB)
	q.Del(markerC)
	q.Del(legacyParam)
}

// VersionLabel formats the channel-qualified version string, e.g. "A1.1.3".
// Pure formatting; unknown codes fall back to the channel A label.
func VersionLabel(c Code) string {
	switch c {
	case ChannelB:
		return "B" + versionNumber
	case ChannelC:
		return "C" + versionNumber
	default:
		return "A" + versionNumber
	}
}
