package common

// Permute reorders vs by a 1-based permutation: ret[i] = vs[perm[i]-1].
func Permute[T any](vs []T, perm []uint32) []T {
	ret := make([]T, len(vs))
	for i := range perm {
		ret[i] = vs[perm[i]-1]
	}
	return ret
}
