package zktrie

import (
	"fmt"

	"github.com/zkrollup/zktrie/pkg/util"
)

// maxCompressedSlots is the number of leading value slots a compression flag
// can address, indices 0 through 24.
const maxCompressedSlots = 25

// Fold reduces an arbitrary 32-byte blob into a field element by hashing its
// two halves, each zero-extended to 32 bytes.
func Fold(s HashScheme, v util.Byte32) (util.Hash, error) {
	var hi, lo util.Hash
	copy(hi[halfSize:], v[:halfSize])
	copy(lo[halfSize:], v[halfSize:])
	return s.Hash(hi, lo)
}

// HashValues computes the value hash of a slot list. A set bit i of flag
// means slot i is not a valid field element and is folded first, the flag
// addresses the first 25 slots; unflagged slots must pass the field
// membership check. The resulting sequence is then combined pairwise
// bottom-up left-to-right, promoting an odd trailing element to the next
// round.
func HashValues(s HashScheme, values []util.Byte32, flag uint32) (util.Hash, error) {
	if len(values) == 0 {
		return util.Hash{}, fmt.Errorf("%w: empty slot list", ErrInvalidEncoding)
	}
	hashes := make([]util.Hash, len(values))
	for i, v := range values {
		if i < maxCompressedSlots && flag&(1<<uint(i)) != 0 {
			h, err := Fold(s, v)
			if err != nil {
				return util.Hash{}, err
			}
			hashes[i] = h
		} else {
			h := util.Hash(v)
			if err := s.ValidateField(h); err != nil {
				return util.Hash{}, fmt.Errorf("slot %d: %w", i, err)
			}
			hashes[i] = h
		}
	}
	for len(hashes) > 1 {
		length := len(hashes)
		for i := 0; i < length/2; i++ {
			h, err := s.Hash(hashes[2*i], hashes[2*i+1])
			if err != nil {
				return util.Hash{}, err
			}
			hashes[i] = h
		}
		if length%2 != 0 {
			hashes[length/2] = hashes[length-1]
		}
		hashes = hashes[:length/2+length%2]
	}
	return hashes[0], nil
}
