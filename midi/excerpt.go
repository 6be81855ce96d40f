package midi

import "gitlab.com/gomidi/midi/v2/smf"

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xff && msg[1] == 0x2f
}

type channelKey struct {
	channel uint8
	key     uint8
}

// Excerpt keeps every track from ticksOffset on, stopping after maxNotes
// notes per track (0 means no limit). Notes that are kept also keep their
// note off, so the excerpt never leaves a note hanging. Non-note events from
// before the offset, such as tempo or program changes, are moved to the start.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		pos := ticksOffset
		var numNotes int
		held := make(map[channelKey]int)
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			if isEndOfTrack(evt.Message) {
				break
			}
			var ch, key, vel uint8
			isStart := evt.Message.GetNoteStart(&ch, &key, &vel)
			isEnd := !isStart && evt.Message.GetNoteEnd(&ch, &key)
			full := maxNotes > 0 && numNotes >= maxNotes
			switch {
			case absTicks < ticksOffset && (isStart || isEnd):
				continue
			case absTicks < ticksOffset:
				evt.Delta = 0
				newTrack = append(newTrack, evt)
			case isStart && full:
				continue
			case isStart:
				numNotes++
				held[channelKey{ch, key}]++
			case isEnd:
				ck := channelKey{ch, key}
				if held[ck] == 0 {
					// its note on was before the offset or past the limit
					continue
				}
				held[ck]--
			case full:
				continue
			}
			if absTicks >= ticksOffset {
				evt.Delta = uint32(absTicks - pos)
				pos = absTicks
				newTrack = append(newTrack, evt)
			}
			if full && isEnd && sumHeld(held) == 0 {
				break TrackEventLoop
			}
		}
		newTrack.Close(0)

		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}

func sumHeld(held map[channelKey]int) int {
	var n int
	for _, v := range held {
		n += v
	}
	return n
}
