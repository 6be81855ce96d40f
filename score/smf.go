package score

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

type ExportOptions struct {
	BPM      float64
	Velocity uint8
}

var DefaultExportOptions = ExportOptions{BPM: 120, Velocity: 64}

type timedMessage struct {
	tick  int64
	isOff bool
	msg   midi.Message
}

func (p *Part) toTick(t int) int64 {
	return int64(t) * TicksPerQuarter / int64(p.QuarterDuration)
}

// ToSMF renders the notes of a part as a single track. Each voice plays on
// channel voice-1; rests are implied by silence.
func (p *Part) ToSMF(opts ExportOptions) (*smf.SMF, error) {
	if p.QuarterDuration <= 0 {
		return nil, fmt.Errorf("part %v has quarter duration %d", p.Id, p.QuarterDuration)
	}

	var events []timedMessage
	for _, n := range p.Notes {
		if n.Start < 0 {
			return nil, fmt.Errorf("note %v starts at %d: %w", n.Id, n.Start, ErrInvalidSpan)
		}
		key, err := n.Midi()
		if err != nil {
			return nil, fmt.Errorf("note %v: %w", n.Id, err)
		}
		ch := uint8(n.Voice-1) & 0x0f
		events = append(events,
			timedMessage{tick: p.toTick(n.Start), msg: midi.NoteOn(ch, key, opts.Velocity)},
			timedMessage{tick: p.toTick(n.End), isOff: true, msg: midi.NoteOff(ch, key)},
		)
	}

	// note offs first so repeated notes in one voice retrigger
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isOff && !events[j].isOff
	})

	var track smf.Track
	if len(p.TimeSignatures) > 0 {
		ts := p.TimeSignatures[0]
		track.Add(0, smf.MetaMeter(uint8(ts.Beats), uint8(ts.BeatType)))
	}
	track.Add(0, smf.MetaTempo(opts.BPM))

	var last int64
	for _, e := range events {
		track.Add(uint32(e.tick-last), e.msg)
		last = e.tick
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}
	return s, nil
}

func WriteSMF(p *Part, w io.Writer, opts ExportOptions) error {
	s, err := p.ToSMF(opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi file: %w", err)
	}
	return nil
}
