package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("Error parsing midi file %v... %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file %v... %w", filepath, err)
	}
	if len(res.Tracks) == 0 {
		return nil, errors.New("Error parsing midi file " + filepath + "... no tracks")
	}

	return res, nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("Couldn't open file %v: %w", filepath, err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("Write failed for file %v: %w", filepath, err)
	}
	return nil
}
