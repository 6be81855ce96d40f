package score

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteOn struct {
	tick    int64
	channel uint8
	key     uint8
}

func TestWriteSMFRoundTrip(t *testing.T) {
	p := NewDefaultPart(4)
	assert.NoError(t, AddNote(p, 72, 1, 0, 4, "s0", 1))
	assert.NoError(t, AddNote(p, 48, 4, 0, 4, "b0", 2))
	assert.NoError(t, AddNote(p, 72, 1, 4, 8, "s1", 1))
	assert.NoError(t, AddRest(p, 4, 4, 8, "b1", 2))

	var buf bytes.Buffer
	assert.NoError(t, WriteSMF(p, &buf, DefaultExportOptions))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	assert.Equal(t, smf.MetricTicks(TicksPerQuarter), s.TimeFormat)

	var ons []noteOn
	var offs int
	var bpms []float64
	var meters [][2]uint8
	for _, track := range s.Tracks {
		var abs int64
		for _, ev := range track {
			abs += int64(ev.Delta)
			var ch, key, vel, num, denom uint8
			var bpm float64
			msg := midi.Message(ev.Message)
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				assert.Zero(t, abs)
				bpms = append(bpms, bpm)
			case ev.Message.GetMetaMeter(&num, &denom):
				assert.Zero(t, abs)
				meters = append(meters, [2]uint8{num, denom})
			case msg.GetNoteStart(&ch, &key, &vel):
				ons = append(ons, noteOn{abs, ch, key})
			case msg.GetNoteEnd(&ch, &key):
				offs++
			}
		}
	}

	assert.Equal(t, []noteOn{
		{0, 0, 72},
		{0, 3, 48},
		{TicksPerQuarter, 0, 72},
	}, ons)
	assert.Equal(t, 3, offs)
	if assert.Len(t, bpms, 1) {
		assert.InDelta(t, 120, bpms[0], 0.01)
	}
	assert.Equal(t, [][2]uint8{{4, 4}}, meters)
}

func TestWriteSMFTempo(t *testing.T) {
	p := NewDefaultPart(4)
	assert.NoError(t, AddNote(p, 60, 1, 0, 4, "s0", 1))

	var buf bytes.Buffer
	assert.NoError(t, WriteSMF(p, &buf, ExportOptions{BPM: 90, Velocity: 80}))
	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)

	var bpm float64
	var found bool
	for _, ev := range s.Tracks[0] {
		if ev.Message.GetMetaTempo(&bpm) {
			found = true
			break
		}
	}
	assert.True(t, found)
	assert.InDelta(t, 90, bpm, 0.01)
}

func TestToSMFRejectsBadPart(t *testing.T) {
	p := NewPart("P1", "broken", 0)
	_, err := p.ToSMF(DefaultExportOptions)
	assert.Error(t, err)

	p = NewDefaultPart(4)
	assert.NoError(t, AddNote(p, 60, 1, -4, 0, "s0", 1))
	_, err = p.ToSMF(DefaultExportOptions)
	assert.ErrorIs(t, err, ErrInvalidSpan)
}
