package model

type Voice uint8

const (
	Soprano Voice = iota + 1
	Alto
	Tenor
	Bass
)

// Voices lists the four parts from top to bottom.
var Voices = [4]Voice{Soprano, Alto, Tenor, Bass}

func (v Voice) String() string {
	switch v {
	case Soprano:
		return "soprano"
	case Alto:
		return "alto"
	case Tenor:
		return "tenor"
	case Bass:
		return "bass"
	}
	return "unknown"
}

// Letter is the one-letter suffix used in note ids.
func (v Voice) Letter() string {
	switch v {
	case Soprano:
		return "s"
	case Alto:
		return "a"
	case Tenor:
		return "t"
	case Bass:
		return "b"
	}
	return "x"
}

// Staff returns 1 for the upper voices (treble staff) and 2 for the lower ones.
func (v Voice) Staff() int {
	if v == Tenor || v == Bass {
		return 2
	}
	return 1
}
