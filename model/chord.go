package model

import "fmt"

// Pitch is an optional MIDI key. The zero value is empty.
type Pitch struct {
	Key   uint8
	Valid bool
}

func Key(k uint8) Pitch {
	return Pitch{Key: k, Valid: true}
}

func (p Pitch) Empty() bool {
	return !p.Valid
}

func (p Pitch) String() string {
	if !p.Valid {
		return "-"
	}
	return fmt.Sprintf("%v", p.Key)
}

type Chord struct {
	Soprano Pitch
	Alto    Pitch
	Tenor   Pitch
	Bass    Pitch
}

func NewChord(soprano, alto, tenor, bass uint8) Chord {
	return Chord{
		Soprano: Key(soprano),
		Alto:    Key(alto),
		Tenor:   Key(tenor),
		Bass:    Key(bass),
	}
}

func (c Chord) Get(v Voice) Pitch {
	switch v {
	case Soprano:
		return c.Soprano
	case Alto:
		return c.Alto
	case Tenor:
		return c.Tenor
	case Bass:
		return c.Bass
	}
	return Pitch{}
}

func (c *Chord) Set(v Voice, p Pitch) {
	switch v {
	case Soprano:
		c.Soprano = p
	case Alto:
		c.Alto = p
	case Tenor:
		c.Tenor = p
	case Bass:
		c.Bass = p
	}
}

// Complete reports whether all four voices are populated.
func (c Chord) Complete() bool {
	for _, v := range Voices {
		if c.Get(v).Empty() {
			return false
		}
	}
	return true
}

type Progression struct {
	Chords []Chord
}

func NewProgression(chords ...Chord) *Progression {
	return &Progression{Chords: chords}
}

func (p *Progression) Len() int {
	return len(p.Chords)
}
