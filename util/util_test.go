package util

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGatherMidiPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mid"))
	touch(t, filepath.Join(dir, "a.MID"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.midi"))

	assert := assert.New(t)

	flat, err := GatherMidiPaths(dir, false)
	assert.NoError(err)
	assert.Equal([]string{filepath.Join(dir, "a.MID"), filepath.Join(dir, "b.mid")}, flat)

	all, err := GatherMidiPaths(dir, true)
	assert.NoError(err)
	assert.Len(all, 3)
	assert.Equal(filepath.Join(dir, "sub", "c.midi"), all[2])
}

func TestGatherMidiPathsMissingDir(t *testing.T) {
	_, err := GatherMidiPaths(filepath.Join(t.TempDir(), "nope"), false)
	assert.Error(t, err)
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]uint8{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int{}))
}

func TestRandomWord(t *testing.T) {
	a := RandomWord(rand.New(rand.NewSource(1)), 8)
	b := RandomWord(rand.New(rand.NewSource(1)), 8)

	assert.Len(t, a, 8)
	assert.Equal(t, a, b)
	assert.Regexp(t, "^[a-z]{8}$", a)
}
