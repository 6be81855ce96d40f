package model

// PerformedNote is one row of a performance note array.
type PerformedNote struct {
	OnsetSec     float64
	DurationSec  float64
	OnsetTick    int64
	DurationTick int64
	Pitch        uint8
	Velocity     uint8
	Track        int
	Channel      uint8
	Id           string
}

func (n PerformedNote) OffsetSec() float64 {
	return n.OnsetSec + n.DurationSec
}

type Performance struct {
	Id    string
	Path  string
	Notes []PerformedNote
}

// Duration is the time in seconds until the last note is released.
func (p Performance) Duration() float64 {
	var end float64
	for _, n := range p.Notes {
		if n.OffsetSec() > end {
			end = n.OffsetSec()
		}
	}
	return end
}
