package score

import (
	"testing"

	"github.com/jsphweid/miws/pitch"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultPart(t *testing.T) {
	p := NewDefaultPart(4)

	assert := assert.New(t)
	assert.Equal("P0", p.Id)
	assert.Equal(4, p.QuarterDuration)
	assert.Equal([]TimeSignature{{Start: 0, Beats: 4, BeatType: 4}}, p.TimeSignatures)
	assert.Len(p.Clefs, 2)
	assert.Equal("part from progression", p.Name)
	assert.Equal(Clef{Start: 0, Staff: 1, Sign: "G", Line: 2}, p.Clefs[0])
	assert.Equal(Clef{Start: 0, Staff: 2, Sign: "F", Line: 4}, p.Clefs[1])
	assert.Empty(p.Notes)
}

func TestAddNoteSpellsPitch(t *testing.T) {
	p := NewDefaultPart(4)

	assert := assert.New(t)
	assert.NoError(AddNote(p, 66, 2, 4, 8, "1234_a1", 1))
	assert.Equal([]Note{{
		Id:       "n1234_a1",
		Spelling: pitch.Spelling{Step: "F", Alter: 1, Octave: 4},
		Voice:    2,
		Staff:    1,
		Start:    4,
		End:      8,
	}}, p.Notes)
}

func TestAddRest(t *testing.T) {
	p := NewDefaultPart(4)

	assert := assert.New(t)
	assert.NoError(AddRest(p, 3, 0, 4, "r0", 2))
	assert.Equal([]Rest{{Id: "nr0", Voice: 3, Staff: 2, Start: 0, End: 4}}, p.Rests)
	assert.Empty(p.Notes)
	assert.Equal(4, p.End())
}

func TestRejectsBackwardsSpan(t *testing.T) {
	p := NewDefaultPart(4)

	assert.ErrorIs(t, AddNote(p, 60, 1, 8, 4, "x", 1), ErrInvalidSpan)
	assert.ErrorIs(t, AddRest(p, 1, 8, 4, "x", 1), ErrInvalidSpan)
	assert.Empty(t, p.Notes)
	assert.Empty(t, p.Rests)
}

func TestSortedNotesAndVoices(t *testing.T) {
	p := NewDefaultPart(4)
	assert.NoError(t, AddNote(p, 48, 4, 4, 8, "b1", 2))
	assert.NoError(t, AddNote(p, 72, 1, 0, 4, "s0", 1))
	assert.NoError(t, AddNote(p, 74, 1, 4, 8, "s1", 1))
	assert.NoError(t, AddNote(p, 48, 4, 0, 4, "b0", 2))

	var ids []string
	for _, n := range p.SortedNotes() {
		ids = append(ids, n.Id)
	}
	assert.Equal(t, []string{"ns0", "nb0", "ns1", "nb1"}, ids)

	bass := p.NotesInVoice(4)
	assert.Len(t, bass, 2)
	assert.Equal(t, "nb0", bass[0].Id)
	assert.Equal(t, 8, p.End())
}
