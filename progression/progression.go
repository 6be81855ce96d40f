package progression

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jsphweid/miws/chord"
	"github.com/jsphweid/miws/model"
	"github.com/jsphweid/miws/score"
)

const DefaultQuarterDuration = 4

type Options struct {
	// Part to extend. A fresh default part is created when nil.
	Part *score.Part
	// Divisions per chord, 4 when zero.
	QuarterDuration int
	TimeOffset      int
	// Tagger for note ids, a time-seeded DigitTagger when nil.
	Tagger Tagger
}

// Span is the time interval occupied by chord i.
func Span(i, unit, offset int) (start, end int) {
	return i*unit + offset, (i+1)*unit + offset
}

// ToPart sanitizes prog and writes each chord as four notes, one per voice,
// soprano and alto on staff 1, tenor and bass on staff 2. Note ids look like
// "n<tag>_s3" for the soprano of chord 3.
func ToPart(prog *model.Progression, opts Options) (*score.Part, error) {
	if err := chord.Sanitize(prog); err != nil {
		return nil, fmt.Errorf("could not sanitize progression: %w", err)
	}

	unit := opts.QuarterDuration
	if unit == 0 {
		unit = DefaultQuarterDuration
	}
	if unit < 0 {
		return nil, fmt.Errorf("quarter duration must be positive, got %d", unit)
	}

	part := opts.Part
	if part == nil {
		part = score.NewDefaultPart(unit)
	}

	tagger := opts.Tagger
	if tagger == nil {
		tagger = NewDigitTagger(time.Now().UnixNano())
	}
	tag := tagger.Tag()

	for i, c := range prog.Chords {
		if c.Soprano.Empty() {
			continue
		}
		start, end := Span(i, unit, opts.TimeOffset)
		for _, v := range model.Voices {
			idx := tag + "_" + v.Letter() + strconv.Itoa(i)
			if err := score.AddNote(part, c.Get(v).Key, int(v), start, end, idx, v.Staff()); err != nil {
				return nil, err
			}
		}
	}
	return part, nil
}
