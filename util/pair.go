package util

type Pair[A, B any] struct {
	Fst A
	Snd B
}

func NewPair[A, B any](fst A, snd B) Pair[A, B] {
	return Pair[A, B]{
		Fst: fst,
		Snd: snd,
	}
}

// Zip pairs up the elements of fst and snd at the same index,
// stopping at the end of the shorter slice
func Zip[A, B any](fst []A, snd []B) []Pair[A, B] {
	n := min(len(fst), len(snd))
	pairs := make([]Pair[A, B], n)
	for i := range n {
		pairs[i] = NewPair(fst[i], snd[i])
	}
	return pairs
}
