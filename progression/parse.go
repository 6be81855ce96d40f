package progression

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/miws/model"
	"github.com/jsphweid/miws/pitch"
)

func isHold(token string) bool {
	return token == "-" || token == "_"
}

// Parse reads one chord per line: soprano, alto, tenor and bass separated by
// spaces or commas. A voice is a MIDI number, a pitch name like "F#3", or
// "-" when empty. A line holding a single "-" repeats the previous chord.
// Text after "#" is ignored unless it directly follows a step letter.
func Parse(r io.Reader) (*model.Progression, error) {
	prog := model.NewProgression()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := stripComment(scanner.Text())
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && isHold(fields[0]):
			prog.Chords = append(prog.Chords, model.Chord{})
			continue
		case len(fields) != len(model.Voices):
			return nil, fmt.Errorf("line %d: want %d voices, got %d", lineNum, len(model.Voices), len(fields))
		}

		var c model.Chord
		for i, token := range fields {
			if isHold(token) {
				continue
			}
			key, err := pitch.ParseKey(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			c.Set(model.Voices[i], model.Key(key))
		}
		prog.Chords = append(prog.Chords, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read progression: %w", err)
	}
	return prog, nil
}

// stripComment drops a "#" comment. A "#" right after a letter or another "#"
// is a sharp.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i > 0 && (isLetter(line[i-1]) || line[i-1] == '#') {
			continue
		}
		return line[:i]
	}
	return line
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
