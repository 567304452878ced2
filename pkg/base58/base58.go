// Package base58 implements Base58 and Base58Check encoding with a
// parameterized alphabet (spec.md §4.3): the Bitcoin-family alphabet used
// by every UTXO coin in the registry, and Ripple's differently-ordered
// alphabet.
package base58

import (
	"errors"
	"math/big"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"

	"github.com/olehkaliuzhnyi/hdkeyring/pkg/hash"
)

// BitcoinAlphabet is the 58-character alphabet used by Bitcoin and every
// other coin in the registry except Ripple.
const BitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// RippleAlphabet reorders the same 58 symbols; Ripple addresses use it
// in place of the Bitcoin alphabet.
const RippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// ErrInvalidChecksum is returned by CheckDecode when the trailing 4-byte
// checksum does not match.
var ErrInvalidChecksum = errors.New("base58: checksum mismatch")

// ErrInvalidCharacter is returned by Decode when the input contains a byte
// outside the given alphabet.
var ErrInvalidCharacter = errors.New("base58: invalid character")

// Encoding is a Base58 codec bound to a specific alphabet.
type Encoding struct {
	alphabet string
	decode   map[byte]int64
}

// NewEncoding builds an Encoding for a 58-character alphabet.
func NewEncoding(alphabet string) *Encoding {
	if len(alphabet) != 58 {
		panic("base58: alphabet must be 58 characters")
	}
	e := &Encoding{alphabet: alphabet, decode: make(map[byte]int64, 58)}
	for i := 0; i < len(alphabet); i++ {
		e.decode[alphabet[i]] = int64(i)
	}
	return e
}

// Bitcoin is the default Base58 codec (P2PKH/P2SH/WIF/BIP-32 strings).
var Bitcoin = NewEncoding(BitcoinAlphabet)

// Ripple is the Base58 codec with Ripple's alternate alphabet.
var Ripple = NewEncoding(RippleAlphabet)

// Encode base58-encodes input: read as a big-endian integer, repeatedly
// divmod by 58, then prepend one leading-alphabet-char per leading zero
// byte of input (spec.md §4.3).
func (e *Encoding) Encode(input []byte) string {
	if e == Bitcoin {
		// The ecosystem encoder (github.com/btcsuite/btcd/btcutil/base58)
		// implements byte-identical Bitcoin-alphabet Base58; reuse it for
		// the common path instead of re-deriving the digit loop.
		return btcbase58.Encode(input)
	}

	zeros := 0
	for _, b := range input {
		if b != 0 {
			break
		}
		zeros++
	}

	x := new(big.Int).SetBytes(input)
	base := big.NewInt(58)
	mod := new(big.Int)
	var out []byte
	for x.Sign() > 0 {
		x.DivMod(x, base, mod)
		out = append(out, e.alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, e.alphabet[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode reverses Encode. An unknown character fails with
// ErrInvalidCharacter.
func (e *Encoding) Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	zeros := 0
	for i := 0; i < len(s); i++ {
		if s[i] != e.alphabet[0] {
			break
		}
		zeros++
	}

	n := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		digit, ok := e.decode[s[i]]
		if !ok {
			return nil, ErrInvalidCharacter
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(digit))
	}

	body := n.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}

// CheckEncode appends the first 4 bytes of DoubleSHA256(payload) and
// base58-encodes the result (spec.md §4.3).
func (e *Encoding) CheckEncode(payload []byte) string {
	checksum := hash.DoubleSHA256(payload)[:4]
	buf := make([]byte, 0, len(payload)+4)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return e.Encode(buf)
}

// CheckDecode reverses CheckEncode, verifying the checksum.
func (e *Encoding) CheckDecode(s string) ([]byte, error) {
	raw, err := e.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, ErrInvalidChecksum
	}
	payload, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := hash.DoubleSHA256(payload)[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, ErrInvalidChecksum
		}
	}
	return payload, nil
}

// Encode base58-encodes input using the default Bitcoin alphabet.
func Encode(input []byte) string { return Bitcoin.Encode(input) }

// Decode base58-decodes s using the default Bitcoin alphabet.
func Decode(s string) ([]byte, error) { return Bitcoin.Decode(s) }

// CheckEncode base58check-encodes version || payload using the default
// Bitcoin alphabet.
func CheckEncode(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, version)
	buf = append(buf, payload...)
	return Bitcoin.CheckEncode(buf)
}

// CheckDecode base58check-decodes s using the default Bitcoin alphabet,
// returning the version byte and the remaining payload.
func CheckDecode(s string) (version byte, payload []byte, err error) {
	full, err := Bitcoin.CheckDecode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(full) < 1 {
		return 0, nil, ErrInvalidChecksum
	}
	return full[0], full[1:], nil
}
