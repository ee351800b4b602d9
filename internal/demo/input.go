// SPDX-License-Identifier: MIT

package demo

import (
	"slices"
	"time"
)

// Input carries the data the array demos operate on.
type Input struct {
	Sort       []int
	Duplicates []int
	Unique     []int
	CommonA    []int
	CommonB    []int
	Matrix     [][]int
	SwapA      int
	SwapB      int
	Names      []string

	// Now is the clock used by timing output. nil means time.Now.
	Now func() time.Time
}

// DefaultInput returns the fixtures used when nothing is configured.
func DefaultInput() Input {
	return Input{
		Sort:       []int{5, 7, 33, 6, 8, 1, -7},
		Duplicates: []int{1, 2, 3, 2, 1, 4, 5, 4},
		Unique:     []int{4, 5, 5, 5, 4, 6, 6, 9, 4},
		CommonA:    []int{4, 3, 2},
		CommonB:    []int{2, 1, 7, 4},
		Matrix: [][]int{
			{5, 0, 7},
			{67, 3, 23},
			{96, 75, 1},
		},
		SwapA: 5,
		SwapB: 7,
		Names: []string{"Abhi", "Dash", "Alekhya", "Adam", "Ram"},
	}
}

// clone deep-copies the slices so demos can sort in place freely.
func (in Input) clone() Input {
	out := in
	out.Sort = slices.Clone(in.Sort)
	out.Duplicates = slices.Clone(in.Duplicates)
	out.Unique = slices.Clone(in.Unique)
	out.CommonA = slices.Clone(in.CommonA)
	out.CommonB = slices.Clone(in.CommonB)
	out.Names = slices.Clone(in.Names)
	if in.Matrix != nil {
		out.Matrix = make([][]int, len(in.Matrix))
		for i, row := range in.Matrix {
			out.Matrix[i] = slices.Clone(row)
		}
	}

	return out
}

func (in Input) clock() func() time.Time {
	if in.Now == nil {
		return time.Now
	}

	return in.Now
}
