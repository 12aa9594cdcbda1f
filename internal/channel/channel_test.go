package channel

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	code Code
	set  bool
	// setCalls counts writes so tests can assert persistence behaviour.
	setCalls int
}

func (m *memStore) Channel() (Code, bool) { return m.code, m.set }
func (m *memStore) SetChannel(c Code)     { m.code, m.set = c, true; m.setCalls++ }
func (m *memStore) ClearChannel()         { m.code, m.set = "", false }

func query(raw string) url.Values {
	q, err := url.ParseQuery(raw)
	if err != nil {
		panic(err)
	}
	return q
}

func TestParse(t *testing.T) {
	for _, valid := range []string{"channelA", "channelB", "channelC"} {
		c, ok := Parse(valid)
		require.True(t, ok, valid)
		assert.Equal(t, Code(valid), c)
	}
	for _, invalid := range []string{"", "channelD", "ChannelA", "a", "channela "} {
		_, ok := Parse(invalid)
		assert.False(t, ok, "%q should not parse", invalid)
	}
}

func TestFromQueryMarkerPrecedence(t *testing.T) {
	cases := []struct {
		raw  string
		want Code
		ok   bool
	}{
		{"axiselectweba", ChannelA, true},
		{"axiselectwebb", ChannelB, true},
		{"axiselectwebc", ChannelC, true},
		{"channel=channelB", ChannelB, true},
		{"channel=channelD", "", false},
		{"", "", false},
		// Multiple markers: A before B before C before legacy.
		{"axiselectwebc&axiselectweba", ChannelA, true},
		{"axiselectwebc&axiselectwebb", ChannelB, true},
		{"channel=channelC&axiselectwebb", ChannelB, true},
	}
	for _, tc := range cases {
		got, ok := FromQuery(query(tc.raw))
		assert.Equal(t, tc.ok, ok, tc.raw)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.raw)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Run("marker wins and persists", func(t *testing.T) {
		s := &memStore{code: ChannelA, set: true}
		got := Resolve(query("axiselectwebb"), s, "channelC")
		assert.Equal(t, ChannelB, got)
		assert.Equal(t, ChannelB, s.code)
		assert.Equal(t, 1, s.setCalls)
	})
	t.Run("store read does not re-persist", func(t *testing.T) {
		s := &memStore{code: ChannelC, set: true}
		got := Resolve(query(""), s, "channelA")
		assert.Equal(t, ChannelC, got)
		assert.Zero(t, s.setCalls)
	})
	t.Run("env default persists", func(t *testing.T) {
		s := &memStore{}
		got := Resolve(query(""), s, "channelB")
		assert.Equal(t, ChannelB, got)
		assert.Equal(t, ChannelB, s.code)
		assert.Equal(t, 1, s.setCalls)
	})
	t.Run("invalid env falls back to channel A without persisting", func(t *testing.T) {
		s := &memStore{}
		got := Resolve(query(""), s, "channelZ")
		assert.Equal(t, ChannelA, got)
		assert.False(t, s.set)
		assert.Zero(t, s.setCalls)
	})
	t.Run("legacy parameter persists", func(t *testing.T) {
		s := &memStore{}
		got := Resolve(query("channel=channelC"), s, "")
		assert.Equal(t, ChannelC, got)
		assert.Equal(t, ChannelC, s.code)
	})
}

func TestSwitchURLCarriesExactlyOneMarker(t *testing.T) {
	target, err := url.Parse("https://example.test/contact?channel=channelA&axiselectwebc&foo=bar")
	require.NoError(t, err)

	out := SwitchURL(target, ChannelB)
	u, err := url.Parse(out)
	require.NoError(t, err)
	q := u.Query()

	assert.True(t, q.Has("axiselectwebb"))
	assert.False(t, q.Has("axiselectweba"))
	assert.False(t, q.Has("axiselectwebc"))
	assert.False(t, q.Has("channel"))
	assert.Equal(t, "bar", q.Get("foo"))

	// The rewritten URL must win the next resolution round.
	s := &memStore{code: ChannelA, set: true}
	assert.Equal(t, ChannelB, Resolve(q, s, ""))
}

func TestVersionLabel(t *testing.T) {
	assert.Equal(t, "A1.1.3", VersionLabel(ChannelA))
	assert.Equal(t, "B1.1.3", VersionLabel(ChannelB))
	assert.Equal(t, "C1.1.3", VersionLabel(ChannelC))
	// Repeated calls are stable and side-effect free.
	assert.Equal(t, "C1.1.3", VersionLabel(ChannelC))
	assert.Equal(t, "A1.1.3", VersionLabel(Code("bogus")))
}
