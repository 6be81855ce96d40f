package score

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/miws/pitch"
)

var ErrInvalidSpan = errors.New("end before start")

type TimeSignature struct {
	Start    int
	Beats    int
	BeatType int
}

type Clef struct {
	Start        int
	Staff        int
	Sign         string
	Line         int
	OctaveChange int
}

type Note struct {
	Id string
	pitch.Spelling
	Voice int
	Staff int
	Start int
	End   int
}

type Rest struct {
	Id    string
	Voice int
	Staff int
	Start int
	End   int
}

// Part holds timed notation elements. Times are in divisions, QuarterDuration
// of them per quarter note.
type Part struct {
	Id              string
	Name            string
	QuarterDuration int

	TimeSignatures []TimeSignature
	Clefs          []Clef
	Notes          []Note
	Rests          []Rest
}

func NewPart(id, name string, quarterDuration int) *Part {
	return &Part{Id: id, Name: name, QuarterDuration: quarterDuration}
}

// NewDefaultPart is a piano-style part in 4/4 with a treble staff (1) and a
// bass staff (2).
func NewDefaultPart(quarterDuration int) *Part {
	p := NewPart("P0", "part from progression", quarterDuration)
	p.AddTimeSignature(0, 4, 4)
	p.AddClef(Clef{Start: 0, Staff: 1, Sign: "G", Line: 2})
	p.AddClef(Clef{Start: 0, Staff: 2, Sign: "F", Line: 4})
	return p
}

func (p *Part) AddTimeSignature(start, beats, beatType int) {
	p.TimeSignatures = append(p.TimeSignatures, TimeSignature{Start: start, Beats: beats, BeatType: beatType})
}

func (p *Part) AddClef(c Clef) {
	p.Clefs = append(p.Clefs, c)
}

// AddNote spells key and adds it as note "n<idx>".
func AddNote(p *Part, key uint8, voice, start, end int, idx string, staff int) error {
	if end < start {
		return fmt.Errorf("note n%s [%d, %d): %w", idx, start, end, ErrInvalidSpan)
	}
	p.Notes = append(p.Notes, Note{
		Id:       "n" + idx,
		Spelling: pitch.FromMidi(key),
		Voice:    voice,
		Staff:    staff,
		Start:    start,
		End:      end,
	})
	return nil
}

// AddRest adds a silent span for a voice as rest "n<idx>".
func AddRest(p *Part, voice, start, end int, idx string, staff int) error {
	if end < start {
		return fmt.Errorf("rest n%s [%d, %d): %w", idx, start, end, ErrInvalidSpan)
	}
	p.Rests = append(p.Rests, Rest{
		Id:    "n" + idx,
		Voice: voice,
		Staff: staff,
		Start: start,
		End:   end,
	})
	return nil
}

// End is the latest end time of any note or rest.
func (p *Part) End() int {
	var end int
	for _, n := range p.Notes {
		if n.End > end {
			end = n.End
		}
	}
	for _, r := range p.Rests {
		if r.End > end {
			end = r.End
		}
	}
	return end
}

// SortedNotes returns the notes ordered by start, then voice.
func (p *Part) SortedNotes() []Note {
	res := append([]Note(nil), p.Notes...)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Start != res[j].Start {
			return res[i].Start < res[j].Start
		}
		return res[i].Voice < res[j].Voice
	})
	return res
}

func (p *Part) NotesInVoice(voice int) []Note {
	var res []Note
	for _, n := range p.SortedNotes() {
		if n.Voice == voice {
			res = append(res, n)
		}
	}
	return res
}
