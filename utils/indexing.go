package utils

import (
	"fmt"
	"sort"
)

// Index is a flat list of zero based node, element or position indices
type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size <= 0 {
		return Index{}
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

// Unique returns the distinct values of I in ascending order
func (I Index) Unique() (r Index) {
	if len(I) == 0 {
		return Index{}
	}
	sorted := I.Copy()
	sort.Ints(sorted)
	r = make(Index, 0, len(sorted))
	for i, val := range sorted {
		if i == 0 || val != sorted[i-1] {
			r = append(r, val)
		}
	}
	return
}

func (I Index) Max() (max int) {
	for i, val := range I {
		if i == 0 || val > max {
			max = val
		}
	}
	return
}

// CheckBounds verifies every entry lies in [0, max)
func (I Index) CheckBounds(max int) (err error) {
	for i, val := range I {
		if val < 0 || val >= max {
			err = fmt.Errorf("index out of range at position %d: %d not in [0,%d)", i, val, max)
			return
		}
	}
	return
}

// Inverse returns the lookup table J with J[I[i]] = i, entries not present in I are -1
func (I Index) Inverse(size int) (J Index, err error) {
	J = make(Index, size)
	for i := range J {
		J[i] = -1
	}
	for i, val := range I {
		switch {
		case val < 0 || val >= size:
			err = fmt.Errorf("dimension bounds error, value %d at position %d not in [0,%d)", val, i, size)
			return
		case J[val] != -1:
			err = fmt.Errorf("index is not a permutation, value %d repeats at positions %d and %d", val, J[val], i)
			return
		}
		J[val] = i
	}
	return
}

func (I Index) Find(op EvalOp, target int) (J Index) {
	/*
		Each element of I is compared to the target:
		if (I[i] op target): append i to the output index J
	*/
	J = Index{}
	switch op {
	case Equal:
		for i, val := range I {
			if val == target {
				J = append(J, i)
			}
		}
	case Less:
		for i, val := range I {
			if val < target {
				J = append(J, i)
			}
		}
	case LessOrEqual:
		for i, val := range I {
			if val <= target {
				J = append(J, i)
			}
		}
	case Greater:
		for i, val := range I {
			if val > target {
				J = append(J, i)
			}
		}
	case GreaterOrEqual:
		for i, val := range I {
			if val >= target {
				J = append(J, i)
			}
		}
	}
	return
}
