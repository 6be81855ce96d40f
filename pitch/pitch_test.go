package pitch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMidi(t *testing.T) {
	cases := []struct {
		key  uint8
		want Spelling
	}{
		{0, Spelling{"C", 0, -1}},
		{21, Spelling{"A", 0, 0}},
		{60, Spelling{"C", 0, 4}},
		{61, Spelling{"C", 1, 4}},
		{66, Spelling{"F", 1, 4}},
		{70, Spelling{"A", 1, 4}},
		{71, Spelling{"B", 0, 4}},
		{127, Spelling{"G", 0, 9}},
	}

	assert := assert.New(t)
	for _, c := range cases {
		assert.Equal(c.want, FromMidi(c.key), "key %v", c.key)
	}
}

func TestSpellingRoundTripsOverMidiRange(t *testing.T) {
	for k := 0; k <= 127; k++ {
		got, err := FromMidi(uint8(k)).Midi()
		if err != nil {
			t.Fatalf("key %v: %v", k, err)
		}
		if got != uint8(k) {
			t.Fatalf("key %v came back as %v", k, got)
		}
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("Bb2")
	assert.NoError(err)
	assert.Equal(Spelling{"B", -1, 2}, s)
	assert.Equal("Bb2", s.String())

	key, err := s.Midi()
	assert.NoError(err)
	assert.Equal(uint8(46), key)

	s, err = Parse("f#3")
	assert.NoError(err)
	assert.Equal("F#3", s.String())

	s, err = Parse("C-1")
	assert.NoError(err)
	assert.Equal(Spelling{"C", 0, -1}, s)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, name := range []string{"", "H4", "C", "C#x", "Cb-1"} {
		_, err := ParseKey(name)
		if !errors.Is(err, ErrBadPitch) {
			t.Errorf("ParseKey(%q) error = %v, want ErrBadPitch", name, err)
		}
	}
}

func TestParseKey(t *testing.T) {
	assert := assert.New(t)

	k, err := ParseKey("72")
	assert.NoError(err)
	assert.Equal(uint8(72), k)

	k, err = ParseKey("E4")
	assert.NoError(err)
	assert.Equal(uint8(64), k)

	_, err = ParseKey("128")
	assert.ErrorIs(err, ErrBadPitch)
}
