package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/miws/model"
)

var ErrNoPrecedingChord = errors.New("no preceding chord to take voices from")

// Key joins the populated voices of a chord in ascending order, e.g. "48-55-64-72".
func Key(c model.Chord) string {
	var notes []uint8
	for _, v := range model.Voices {
		if p := c.Get(v); !p.Empty() {
			notes = append(notes, p.Key)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// Sanitize fills in missing voices in place. A chord with an empty soprano
// repeats the last sounding chord in all four voices; any other empty voice
// takes the last value that voice had. If something has to be filled before
// any value for it was seen, nothing is modified and ErrNoPrecedingChord is
// returned.
func Sanitize(prog *model.Progression) error {
	if err := check(prog); err != nil {
		return err
	}

	var prev model.Chord
	for i := range prog.Chords {
		c := &prog.Chords[i]
		if c.Soprano.Empty() {
			*c = prev
			continue
		}
		for _, v := range model.Voices {
			if c.Get(v).Empty() {
				c.Set(v, prev.Get(v))
			}
		}
		prev = *c
	}
	return nil
}

func check(prog *model.Progression) error {
	var seen [len(model.Voices)]bool
	for i, c := range prog.Chords {
		if c.Soprano.Empty() {
			if !seen[0] {
				return fmt.Errorf("chord %d: %w", i, ErrNoPrecedingChord)
			}
			continue
		}
		for j, v := range model.Voices {
			if !c.Get(v).Empty() {
				seen[j] = true
			} else if !seen[j] {
				return fmt.Errorf("chord %d, %v: %w", i, v, ErrNoPrecedingChord)
			}
		}
	}
	return nil
}
