package performance

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/jsphweid/miws/midi"
	"github.com/jsphweid/miws/model"
	"github.com/jsphweid/miws/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	track     int
	absTicks  int64
	channel   uint8
	key       uint8
	velocity  uint8
	isNoteOff bool
}

type heldKey struct {
	track   int
	channel uint8
	key     uint8
}

// NoteArray pairs note starts with their ends and returns the notes ordered
// by onset, then pitch. Notes still sounding at the end of the file are
// released at the last event.
func NoteArray(s *smf.SMF) []model.PerformedNote {
	var reducedEvents []reducedEvent
	var lastTick int64

	for trackNum, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			msg := gomidi.Message(event.Message)
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{trackNum, absTicks, channel, key, velocity, false})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{trackNum, absTicks, channel, key, 0, true})
			}
		}
		if absTicks > lastTick {
			lastTick = absTicks
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].absTicks != reducedEvents[j].absTicks {
			return reducedEvents[i].absTicks < reducedEvents[j].absTicks
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	var notes []model.PerformedNote
	pressed := make(map[heldKey][]reducedEvent)
	release := func(on reducedEvent, offTick int64) {
		onset := s.TimeAt(on.absTicks)
		offset := s.TimeAt(offTick)
		notes = append(notes, model.PerformedNote{
			OnsetSec:     float64(onset) / 1e6,
			DurationSec:  float64(offset-onset) / 1e6,
			OnsetTick:    on.absTicks,
			DurationTick: offTick - on.absTicks,
			Pitch:        on.key,
			Velocity:     on.velocity,
			Track:        on.track,
			Channel:      on.channel,
		})
	}

	for _, evt := range reducedEvents {
		hk := heldKey{evt.track, evt.channel, evt.key}
		if !evt.isNoteOff {
			pressed[hk] = append(pressed[hk], evt)
			continue
		}
		ons := pressed[hk]
		if len(ons) == 0 {
			continue
		}
		release(ons[0], evt.absTicks)
		pressed[hk] = ons[1:]
	}
	for _, ons := range pressed {
		for _, on := range ons {
			release(on, lastTick)
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].OnsetTick != notes[j].OnsetTick {
			return notes[i].OnsetTick < notes[j].OnsetTick
		}
		if notes[i].Pitch != notes[j].Pitch {
			return notes[i].Pitch < notes[j].Pitch
		}
		if notes[i].Track != notes[j].Track {
			return notes[i].Track < notes[j].Track
		}
		return notes[i].Channel < notes[j].Channel
	})
	for i := range notes {
		notes[i].Id = fmt.Sprintf("n%d", i)
	}
	return notes
}

// LoadFile reads one performance from a midi file.
func LoadFile(path string) (model.Performance, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Performance{}, err
	}
	return model.Performance{
		Id:    uuid.New().String(),
		Path:  path,
		Notes: NoteArray(s),
	}, nil
}

// Load reads every .mid file directly in dir, in name order, and keeps the
// performances with more than minSeqLength notes. The first file that
// cannot be read aborts the load.
func Load(dir string, minSeqLength int) ([]model.Performance, error) {
	paths, err := util.GatherMidiPaths(dir, false)
	if err != nil {
		return nil, err
	}

	var res []model.Performance
	for i, path := range paths {
		slog.Debug("Loading performance", "file", path, "num", i+1, "of", len(paths))
		p, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not load %v: %w", path, err)
		}
		if len(p.Notes) <= minSeqLength {
			slog.Debug("Dropping short performance", "file", path, "notes", len(p.Notes), "min", minSeqLength)
			continue
		}
		res = append(res, p)
	}
	slog.Info("Loaded performances", "dir", dir, "files", len(paths), "kept", len(res))
	return res, nil
}
