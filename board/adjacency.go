package board

import "iter"

// Neighbors yields the indexes reachable from index in one step.
// skip, if non-nil, filters out indexes already used by the caller.
//
// Grid mode yields in the fixed order left, up-left, down-left, right,
// up-right, down-right, up, down, so searches are reproducible. Bag mode
// yields every other index in ascending order. index itself is never
// yielded. An index outside the board yields nothing.
func (b *Board) Neighbors(index int, mode Mode, skip func(int) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		size := b.Size()
		if index < 0 || index >= size {
			return
		}
		if mode == Bag {
			for i := 0; i < size; i++ {
				if i == index || (skip != nil && skip(i)) {
					continue
				}
				if !yield(i) {
					return
				}
			}
			return
		}

		row, col := b.Coordinate(index)
		for _, d := range gridOffsets {
			r, c := row+d[0], col+d[1]
			if !b.InBounds(r, c) {
				continue
			}
			n := b.Index(r, c)
			if skip != nil && skip(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Adjacent yields the neighbours of index that are not listed in exclude.
// Excluded indexes outside the board are ignored.
func (b *Board) Adjacent(index int, exclude []int, mode Mode) iter.Seq[int] {
	if len(exclude) == 0 {
		return b.Neighbors(index, mode, nil)
	}
	set := make(map[int]struct{}, len(exclude))
	for _, e := range exclude {
		set[e] = struct{}{}
	}
	return b.Neighbors(index, mode, func(i int) bool {
		_, ok := set[i]
		return ok
	})
}
