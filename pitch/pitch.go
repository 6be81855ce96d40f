package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPitch = errors.New("bad pitch")

// Spelling is a diatonic step with an alteration in semitones and an octave.
// Middle C (MIDI 60) is C4.
type Spelling struct {
	Step   string
	Alter  int
	Octave int
}

type stepAlter struct {
	step  string
	alter int
}

// pitch classes spelled with sharps only
var pitchClassSpelling = [12]stepAlter{
	{"C", 0}, {"C", 1}, {"D", 0}, {"D", 1}, {"E", 0}, {"F", 0},
	{"F", 1}, {"G", 0}, {"G", 1}, {"A", 0}, {"A", 1}, {"B", 0},
}

var stepBase = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// FromMidi spells a MIDI key. Keys above 127 are not checked.
func FromMidi(key uint8) Spelling {
	sa := pitchClassSpelling[key%12]
	return Spelling{
		Step:   sa.step,
		Alter:  sa.alter,
		Octave: int(key)/12 - 1,
	}
}

// Midi is the inverse of FromMidi and also accepts flat and double alterations.
func (s Spelling) Midi() (uint8, error) {
	base, ok := stepBase[strings.ToUpper(s.Step)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown step %q", ErrBadPitch, s.Step)
	}
	key := (s.Octave+1)*12 + base + s.Alter
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %v is outside the MIDI range", ErrBadPitch, s)
	}
	return uint8(key), nil
}

func (s Spelling) String() string {
	var acc string
	switch {
	case s.Alter > 0:
		acc = strings.Repeat("#", s.Alter)
	case s.Alter < 0:
		acc = strings.Repeat("b", -s.Alter)
	}
	return fmt.Sprintf("%s%s%d", s.Step, acc, s.Octave)
}

// Parse reads a pitch name such as "C4", "F#3", "Bb2" or "e-1".
func Parse(name string) (Spelling, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Spelling{}, fmt.Errorf("%w: empty name", ErrBadPitch)
	}
	s := Spelling{Step: strings.ToUpper(name[:1])}
	if _, ok := stepBase[s.Step]; !ok {
		return Spelling{}, fmt.Errorf("%w: unknown step in %q", ErrBadPitch, name)
	}
	rest := name[1:]
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			s.Alter++
		} else {
			s.Alter--
		}
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Spelling{}, fmt.Errorf("%w: bad octave in %q", ErrBadPitch, name)
	}
	s.Octave = octave
	return s, nil
}

// ParseKey accepts either a MIDI number or a pitch name.
func ParseKey(token string) (uint8, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n > 127 {
			return 0, fmt.Errorf("%w: %d is outside the MIDI range", ErrBadPitch, n)
		}
		return uint8(n), nil
	}
	s, err := Parse(token)
	if err != nil {
		return 0, err
	}
	return s.Midi()
}
