package dice

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyPrintShape(t *testing.T) {
	lines := strings.Split(PrettyPrint(), "\n")

	assert := assert.New(t)
	assert.Len(lines, 13)
	for i, line := range lines {
		cells := strings.Split(strings.Trim(line, "|"), "|")
		assert.Len(cells, 17, "line %d: %q", i, line)
	}
	assert.Equal("|  | dice roll 1 | dice roll 2 | dice roll 3 | dice roll 4 | dice roll 5 | dice roll 6 | dice roll 7 | dice roll 8 | dice roll 9 | dice roll 10 | dice roll 11 | dice roll 12 | dice roll 13 | dice roll 14 | dice roll 15 | dice roll 16 |", lines[0])
	assert.True(strings.HasPrefix(lines[1], "| --- | --- |"))
	assert.Equal("| dice sum 2| 96 | 22 | 141 | 41 | 105 | 122 | 11 | 30 | 70 | 121 | 26 | 9 | 112 | 49 | 109 | 14 |", lines[2])
	assert.True(strings.HasPrefix(lines[12], "| dice sum 12| 54 | 130 |"))
}

func TestToMarkdownDefaults(t *testing.T) {
	md, err := ToMarkdown([][]float64{{1, 2.5}, {3, 4}}, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "|  | Col 0 | Col 1 |\n| --- | --- | --- |\n| Row 0| 1 | 2.5 |\n| Row 1| 3 | 4 |", md)
}

func TestToMarkdownShapeMismatch(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}

	cases := []struct {
		name     string
		rows     [][]int
		cols     []string
		rowNames []string
	}{
		{"too few column names", rows, []string{"a"}, nil},
		{"too many row names", rows, nil, []string{"a", "b", "c"}},
		{"ragged rows", [][]int{{1, 2}, {3}}, nil, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ToMarkdown(c.rows, c.cols, c.rowNames)
			assert.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestToHTML(t *testing.T) {
	html, err := ToHTML(PrettyPrint())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(html, "<table>")
	assert.Contains(html, "<th>dice roll 16</th>")
	assert.Contains(html, "<td>dice sum 12</td>")
	assert.Equal(11, strings.Count(html, "<tr>")-1)
}

func TestMeasure(t *testing.T) {
	m, err := Measure(7, 0)
	assert.NoError(t, err)
	assert.Equal(t, 104, m)

	m, err = Measure(12, 15)
	assert.NoError(t, err)
	assert.Equal(t, 131, m)

	_, err = Measure(1, 0)
	assert.Error(t, err)
	_, err = Measure(2, 16)
	assert.Error(t, err)
}

func TestRoll(t *testing.T) {
	throws := Roll(rand.New(rand.NewSource(42)))

	assert := assert.New(t)
	assert.Len(throws, NumMeasures)
	for i, th := range throws {
		assert.Equal(i, th.Position)
		assert.GreaterOrEqual(th.Sum, 2)
		assert.LessOrEqual(th.Sum, 12)
		want, err := Measure(th.Sum, i)
		assert.NoError(err)
		assert.Equal(want, th.Measure)
	}
	assert.Equal(throws, Roll(rand.New(rand.NewSource(42))))
}
