// Package dice holds the lookup table of Mozart's musical dice game. Each of
// the 16 measures of a minuet is picked by throwing two dice: the sum (2-12)
// selects the row, the measure position selects the column, and the cell is
// the number of the prepared measure to play.
package dice

import (
	"fmt"
	"math/rand"
)

const (
	NumSums     = 11
	NumMeasures = 16
	MinSum      = 2
)

var Table = [NumSums][NumMeasures]int{
	{96, 22, 141, 41, 105, 122, 11, 30, 70, 121, 26, 9, 112, 49, 109, 14},
	{32, 6, 128, 63, 146, 46, 134, 81, 117, 39, 126, 56, 174, 18, 116, 83},
	{69, 95, 158, 13, 153, 55, 110, 24, 66, 139, 15, 132, 73, 58, 145, 79},
	{40, 17, 113, 85, 161, 2, 159, 100, 90, 176, 7, 34, 67, 160, 52, 170},
	{148, 74, 163, 45, 80, 97, 36, 107, 25, 143, 64, 125, 76, 13, 1, 93},
	{104, 157, 27, 167, 154, 68, 118, 91, 138, 71, 150, 29, 101, 162, 23, 151},
	{152, 60, 171, 53, 99, 133, 21, 127, 16, 155, 57, 175, 43, 168, 89, 172},
	{119, 84, 114, 50, 140, 86, 169, 94, 120, 88, 49, 38, 137, 148, 18, 47},
	{98, 142, 42, 156, 75, 129, 62, 123, 105, 45, 77, 19, 138, 118, 149, 8},
	{3, 87, 165, 61, 135, 47, 147, 33, 102, 4, 31, 164, 144, 59, 173, 78},
	{54, 130, 10, 103, 28, 37, 106, 5, 35, 20, 108, 92, 12, 124, 44, 131},
}

// Rows returns the table as a slice of rows.
func Rows() [][]int {
	res := make([][]int, NumSums)
	for i := range Table {
		res[i] = Table[i][:]
	}
	return res
}

func ColumnNames() []string {
	names := make([]string, NumMeasures)
	for i := range names {
		names[i] = fmt.Sprintf("dice roll %d", i+1)
	}
	return names
}

func RowNames() []string {
	names := make([]string, NumSums)
	for i := range names {
		names[i] = fmt.Sprintf("dice sum %d", i+MinSum)
	}
	return names
}

// Measure looks up the measure for a dice sum at a position (0-15).
func Measure(sum, position int) (int, error) {
	if sum < MinSum || sum >= MinSum+NumSums {
		return 0, fmt.Errorf("dice sum %d out of range", sum)
	}
	if position < 0 || position >= NumMeasures {
		return 0, fmt.Errorf("measure position %d out of range", position)
	}
	return Table[sum-MinSum][position], nil
}

type Throw struct {
	Position int
	Sum      int
	Measure  int
}

// Roll throws two dice for each of the 16 positions.
func Roll(rng *rand.Rand) []Throw {
	res := make([]Throw, NumMeasures)
	for pos := range res {
		sum := rng.Intn(6) + rng.Intn(6) + 2
		res[pos] = Throw{
			Position: pos,
			Sum:      sum,
			Measure:  Table[sum-MinSum][pos],
		}
	}
	return res
}
