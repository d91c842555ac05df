/*
Package poseidon provides the canonical hash scheme of the trie: Poseidon
over the BN254 scalar field, arity 2, standard round counts and zero initial
state. Pinning these parameters is part of the on-wire commitment contract,
roots produced with any other configuration are incompatible.
*/
package poseidon

import (
	"errors"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
	cryptoUtils "github.com/iden3/go-iden3-crypto/utils"

	"github.com/zkrollup/zktrie/pkg/util"
)

// ErrNotInField is returned when an input is not a valid BN254 field element.
var ErrNotInField = errors.New("value is not inside the finite field")

// Scheme is the Poseidon hash scheme. The zero value is ready to use.
type Scheme struct{}

var domainLeaf = util.HashFromBigInt(big.NewInt(1))

// Hash mixes two field elements into one.
func (Scheme) Hash(a, b util.Hash) (util.Hash, error) {
	ab := a.BigInt()
	bb := b.BigInt()
	if !cryptoUtils.CheckBigIntInField(ab) || !cryptoUtils.CheckBigIntInField(bb) {
		return util.Hash{}, ErrNotInField
	}
	sum, err := poseidon.Hash([]*big.Int{ab, bb})
	if err != nil {
		return util.Hash{}, err
	}
	return util.HashFromBigInt(sum), nil
}

// DomainLeaf returns the domain separator interposed into leaf node hashes.
func (Scheme) DomainLeaf() util.Hash {
	return domainLeaf
}

// ValidateField checks that h is a valid BN254 field element.
func (Scheme) ValidateField(h util.Hash) error {
	if !cryptoUtils.CheckBigIntInField(h.BigInt()) {
		return ErrNotInField
	}
	return nil
}
