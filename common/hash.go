package common

import "math/bits"

// Hash is the content hash attached to every term. Terms that are
// α-equivalent share a hash: binder names, erasure flags and annotation
// done-flags never enter the composition.
type Hash uint64

// Constructor tags, used as the seed of each composition.
const (
	TagVar Hash = 1
	TagRef Hash = 2
	TagTyp Hash = 3
	TagAll Hash = 4
	TagLam Hash = 5
	TagApp Hash = 6
	TagLet Hash = 7
	TagAnn Hash = 8
)

const (
	mixConstA = 0xff51afd7ed558ccd
	mixConstB = 0xc4ceb9fe1a85ec53
)

func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= mixConstA
	x ^= x >> 33
	x *= mixConstB
	x ^= x >> 33
	return x
}

// Combine packs two hashes into one 64-bit word and avalanches it.
// On 32-bit inputs the packing coincides with x | (y << 32); rotating
// instead of shifting keeps the high bits of y in play now that the
// final 32-bit truncation is gone. Combine(0, 0) == 0.
func Combine(x, y Hash) Hash {
	return Hash(mix64(uint64(x) ^ bits.RotateLeft64(uint64(y), 32)))
}

// HashStr folds a name into a hash by summing its code points.
func HashStr(name Name) Hash {
	var h Hash
	for _, r := range string(name) {
		h += Hash(r)
	}
	return h
}
