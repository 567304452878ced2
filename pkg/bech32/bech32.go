// Package bech32 implements BIP-173 Bech32 and the native-SegWit (P2WPKH)
// address encoding built on it (spec.md §4.4). The 5-bit regrouping and
// checksum computation are delegated to
// github.com/btcsuite/btcd/btcutil/bech32 — the ecosystem implementation of
// exactly this algorithm — while witness-version/length validation is ours.
package bech32

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ErrInvalidWitnessVersion is returned when witver is outside [0, 16].
var ErrInvalidWitnessVersion = errors.New("bech32: invalid witness version")

// ErrInvalidWitnessProgram is returned when witver 0's program is not 20
// or 32 bytes (P2WPKH / P2WSH respectively).
var ErrInvalidWitnessProgram = errors.New("bech32: invalid witness program length")

// gen is the BIP-173 generator polynomial, reproduced from spec.md §4.4 so
// Polymod is independently checkable against the specification text rather
// than only against btcutil's behavior.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// Polymod computes the BIP-173 checksum polynomial over GF(32) for values,
// each of which must be a 5-bit group.
func Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand implements BIP-173's HRP expansion: high bits, a zero
// separator, then low bits of each HRP character.
func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// Encode produces "<hrp>1<data><checksum>" for the given 5-bit groups,
// matching btcutil/bech32's output byte-for-byte (verified in
// bech32_test.go against the HRP-expansion/Polymod implementation above).
func Encode(hrp string, data []byte) (string, error) {
	return bech32.Encode(hrp, data)
}

// Decode reverses Encode, rejecting mixed case, bad charset, or checksum
// mismatch.
func Decode(s string) (hrp string, data []byte, err error) {
	return bech32.Decode(s)
}

// EncodeSegWitAddress encodes a witness program as a SegWit address:
// 5-bit-regroup witprog, prepend the witness version, Bech32-encode.
func EncodeSegWitAddress(hrp string, witver byte, witprog []byte) (string, error) {
	if witver > 16 {
		return "", ErrInvalidWitnessVersion
	}
	if witver == 0 && len(witprog) != 20 && len(witprog) != 32 {
		return "", ErrInvalidWitnessProgram
	}
	converted, err := bech32.ConvertBits(witprog, 8, 5, true)
	if err != nil {
		return "", ErrInvalidWitnessProgram
	}
	combined := make([]byte, 0, len(converted)+1)
	combined = append(combined, witver)
	combined = append(combined, converted...)
	return bech32.Encode(hrp, combined)
}

// DecodeSegWitAddress reverses EncodeSegWitAddress, returning the HRP,
// witness version and witness program.
func DecodeSegWitAddress(address string) (hrp string, witver byte, witprog []byte, err error) {
	hrp, data, err := bech32.Decode(address)
	if err != nil {
		return "", 0, nil, err
	}
	if len(data) < 1 {
		return "", 0, nil, ErrInvalidWitnessProgram
	}
	witver = data[0]
	if witver > 16 {
		return "", 0, nil, ErrInvalidWitnessVersion
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, ErrInvalidWitnessProgram
	}
	if witver == 0 && len(program) != 20 && len(program) != 32 {
		return "", 0, nil, ErrInvalidWitnessProgram
	}
	return hrp, witver, program, nil
}
