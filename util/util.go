package util

import (
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func isMidiPath(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherMidiPaths lists .mid/.midi files in dir, sorted. Subdirectories are
// only walked when recursive is set.
func GatherMidiPaths(dir string, recursive bool) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if s != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if isMidiPath(s) {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, fmt.Errorf("Error walking %v: %w", dir, err)
	}
	slices.Sort(res)
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// RandomWord returns length random lowercase letters.
func RandomWord(rng *rand.Rand, length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(lowercase[rng.Intn(len(lowercase))])
	}
	return b.String()
}
