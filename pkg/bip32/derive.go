package bip32

import (
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/ec"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/hash"
)

// maxDerivationRetries bounds the BIP-32-mandated "proceed with the next
// value for i" retry (spec.md §4.5, §9 Open Question a) so a derivation
// attempt can never loop unboundedly. A single IL>=n-or-zero miss has
// probability on the order of 2^-127; needing more than a handful of
// retries in a row does not happen with a real HMAC output.
const maxDerivationRetries = 32

// Child derives the child at the given index (spec.md §4.5 CKDpriv /
// CKDpub, unified here since the data-preparation branch is the only
// difference between them). Hardened indices (>=2^31) require a private
// parent; CKDpub on a hardened index fails with ErrHardenedFromPublic.
//
// Per BIP-32, if the HMAC output's left half does not parse to a scalar
// in [1,n-1], or the resulting child key is the point at infinity / zero
// scalar, the child at that index is invalid and derivation must proceed
// with index+1. Child performs that retry internally and returns the key
// actually derived at the first valid index >= the requested one.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	if k.depth == 255 {
		return nil, ErrDepthExceeded
	}
	hardened := IsHardened(index)
	if hardened && !k.isPrivate {
		return nil, ErrHardenedFromPublic
	}

	i := index
	for attempt := 0; attempt < maxDerivationRetries; attempt++ {
		child, err := k.deriveChildAt(i, hardened)
		if err == nil {
			return child, nil
		}
		if err != ErrDerivationInvalid {
			return nil, err
		}
		if i == 0xFFFFFFFF {
			break
		}
		i++
		hardened = IsHardened(i)
		if hardened && !k.isPrivate {
			return nil, ErrHardenedFromPublic
		}
	}
	return nil, ErrDerivationInvalid
}

func (k *ExtendedKey) deriveChildAt(index uint32, hardened bool) (*ExtendedKey, error) {
	data := make([]byte, 0, 37)
	if hardened {
		data = append(data, 0x00)
		data = append(data, k.key...)
	} else {
		data = append(data, k.PublicKeyBytes()...)
	}
	data = append(data, ser32(index)...)

	i := hash.HMACSHA512(k.chainCode[:], data)
	il, ir := i[:32], i[32:]

	var childKey []byte
	if k.isPrivate {
		sum, err := ec.ScalarAddModN(il, k.key)
		if err != nil {
			return nil, ErrDerivationInvalid
		}
		childKey = sum
	} else {
		ilPoint, err := ec.ScalarBaseMultCompressed(il)
		if err != nil {
			return nil, ErrDerivationInvalid
		}
		sumPoint, err := ec.PointAdd(ilPoint, k.key)
		if err != nil {
			return nil, ErrDerivationInvalid
		}
		childKey = sumPoint
	}

	child := &ExtendedKey{
		versions:    k.versions,
		depth:       k.depth + 1,
		parentFP:    k.Fingerprint(),
		childNumber: index,
		isPrivate:   k.isPrivate,
		key:         childKey,
	}
	copy(child.chainCode[:], ir)
	return child, nil
}
