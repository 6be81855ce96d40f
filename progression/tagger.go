package progression

//go:generate mockgen -source=tagger.go -destination=mocks/mock_tagger.go -package=mocks

import (
	"math/rand"
	"strings"

	"github.com/jsphweid/miws/util"
)

// Tagger hands out the short tag shared by all note ids of one conversion.
type Tagger interface {
	Tag() string
}

// DigitTagger makes tags of Length random decimal digits.
type DigitTagger struct {
	Rng    *rand.Rand
	Length int
}

func NewDigitTagger(seed int64) *DigitTagger {
	return &DigitTagger{Rng: rand.New(rand.NewSource(seed)), Length: 4}
}

func (d *DigitTagger) Tag() string {
	var b strings.Builder
	for i := 0; i < d.Length; i++ {
		b.WriteByte(byte('0' + d.Rng.Intn(10)))
	}
	return b.String()
}

// WordTagger makes tags of Length random lowercase letters.
type WordTagger struct {
	Rng    *rand.Rand
	Length int
}

func NewWordTagger(seed int64) *WordTagger {
	return &WordTagger{Rng: rand.New(rand.NewSource(seed)), Length: 4}
}

func (w *WordTagger) Tag() string {
	return util.RandomWord(w.Rng, w.Length)
}
