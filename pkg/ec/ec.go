// Package ec wraps the secp256k1 scalar and point arithmetic the BIP-32
// engine needs: private-to-public conversion, modular scalar addition, and
// point addition (for CKDpub). The modular arithmetic and Jacobian-point
// addition are delegated to decred's secp256k1 implementation, the same
// curve library github.com/btcsuite/btcd/btcec/v2 itself is built on;
// priv-to-pub conversion goes through btcec/v2 directly, matching the
// teacher's own key-handling path.
package ec

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidKey is returned whenever a scalar is zero or is not reduced
// modulo the curve order n, or a derived point is the point at infinity.
var ErrInvalidKey = errors.New("ec: invalid scalar or point")

// PrivToPub returns the 33-byte compressed public key P = k*G for the
// 32-byte scalar k.
func PrivToPub(priv []byte) ([]byte, error) {
	if !IsValidPrivateKey(priv) {
		return nil, ErrInvalidKey
	}
	privKey := btcec.PrivKeyFromBytes(priv)
	return CompressedFromBtcec(privKey.PubKey()), nil
}

// IsValidPrivateKey reports whether b is a 32-byte scalar in [1, n-1].
func IsValidPrivateKey(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	return !overflow && !s.IsZero()
}

// ScalarAddModN computes (a + b) mod n and returns the 32-byte big-endian
// result. It fails if either input does not parse as a scalar < n, or if
// the sum reduces to zero — both are BIP-32's "invalid child" condition
// and the caller (pkg/bip32) is responsible for the retry-with-next-index
// rule BIP-32 specifies for that case.
func ScalarAddModN(a, b []byte) ([]byte, error) {
	var sa, sb secp256k1.ModNScalar
	if len(a) != 32 || len(b) != 32 {
		return nil, ErrInvalidKey
	}
	if sa.SetByteSlice(a) {
		return nil, ErrInvalidKey
	}
	if sb.SetByteSlice(b) {
		return nil, ErrInvalidKey
	}
	sum := new(secp256k1.ModNScalar).Set(&sa).Add(&sb)
	if sum.IsZero() {
		return nil, ErrInvalidKey
	}
	out := sum.Bytes()
	return out[:], nil
}

// ScalarBaseMultCompressed returns the compressed encoding of k*G.
func ScalarBaseMultCompressed(scalar []byte) ([]byte, error) {
	var s secp256k1.ModNScalar
	if len(scalar) != 32 || s.SetByteSlice(scalar) || s.IsZero() {
		return nil, ErrInvalidKey
	}
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &result)
	return compress(&result)
}

// PointAdd adds two compressed points P + Q and returns the compressed
// result. It fails if the sum is the point at infinity.
func PointAdd(pCompressed, qCompressed []byte) ([]byte, error) {
	p, err := decompress(pCompressed)
	if err != nil {
		return nil, err
	}
	q, err := decompress(qCompressed)
	if err != nil {
		return nil, err
	}
	var pj, qj, sum secp256k1.JacobianPoint
	p.AsJacobian(&pj)
	q.AsJacobian(&qj)
	secp256k1.AddNonConst(&pj, &qj, &sum)
	return compress(&sum)
}

func decompress(b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return pub, nil
}

func compress(p *secp256k1.JacobianPoint) ([]byte, error) {
	p.ToAffine()
	if p.X.IsZero() && p.Y.IsZero() {
		return nil, ErrInvalidKey
	}
	pub := secp256k1.NewPublicKey(&p.X, &p.Y)
	return pub.SerializeCompressed(), nil
}

// Uncompress returns the 65-byte uncompressed encoding (0x04 || X || Y) of
// a 33-byte compressed public key; Ethereum addressing needs the raw X||Y
// coordinates rather than the compressed point (spec.md §4.7).
func Uncompress(compressed []byte) ([]byte, error) {
	pub, err := decompress(compressed)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// CompressedFromBtcec re-serializes a btcec public key; used where code
// already holds a *btcec.PublicKey (e.g. from PrivKeyFromBytes) and just
// needs the compressed bytes without a round trip through this package.
func CompressedFromBtcec(pub *btcec.PublicKey) []byte {
	return pub.SerializeCompressed()
}
