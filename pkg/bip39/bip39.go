// Package bip39 implements the BIP-39 mnemonic/seed pipeline (spec.md
// §4.6): entropy→mnemonic, mnemonic validation, and mnemonic→seed via
// PBKDF2-HMAC-SHA512 key stretching. The wordlist, entropy-to-mnemonic
// mapping and checksum verification are delegated to
// github.com/tyler-smith/go-bip39 — the library the teacher
// (internal/wallet/wallet_test.go), Jasonyou1995-simple-eth-hd-wallet and
// not-for-prod-crypto all already use for this exact job. Seed stretching
// is reimplemented on top of golang.org/x/crypto/pbkdf2 so the mandatory
// NFKD normalization step (spec.md §4.6) is explicit and independently
// verifiable rather than hidden inside the dependency.
package bip39

import (
	"crypto/sha512"
	"errors"

	tylersmith "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Language names a BIP-39 wordlist. English is mandatory (spec.md §4.6,
// §9b) and is the only wordlist the mnemonic functions in this package
// use; lists registered via RegisterWordlist for other languages are
// stored under their Language but not consulted by NewMnemonic, Generate,
// Validate or EntropyFromMnemonic.
type Language string

// English is the only wordlist guaranteed to be available.
const English Language = "english"

var wordlists = map[Language][]string{
	English: tylersmith.GetWordList(),
}

// ErrUnknownLanguage reports a Language with no registered wordlist. No
// function in this package returns it.
var ErrUnknownLanguage = errors.New("bip39: unknown language")

// ErrInvalidWordCount is returned by RegisterWordlist when a wordlist is
// not exactly 2048 words, and by Generate when the requested mnemonic
// length is not 12/15/18/21/24 words.
var ErrInvalidWordCount = errors.New("bip39: invalid word count")

// RegisterWordlist adds (or replaces) a 2048-word list for lang. English
// is pre-registered. A registered list is only stored: mnemonic
// generation and validation in this package still use English.
func RegisterWordlist(lang Language, words []string) error {
	if len(words) != 2048 {
		return ErrInvalidWordCount
	}
	wordlists[lang] = words
	return nil
}

// validEntropyBits are the only entropy sizes BIP-39 defines, yielding
// 12/15/18/21/24-word mnemonics respectively.
var validEntropyBits = map[int]bool{128: true, 160: true, 192: true, 224: true, 256: true}

// NewEntropy returns bitSize bits of cryptographically secure random
// entropy, suitable for NewMnemonic. bitSize must be one of
// 128/160/192/224/256.
func NewEntropy(bitSize int) ([]byte, error) {
	if !validEntropyBits[bitSize] {
		return nil, ErrInvalidEntropySize
	}
	return tylersmith.NewEntropy(bitSize)
}

// ErrInvalidEntropySize is returned when entropy length isn't one of the
// five BIP-39-defined sizes.
var ErrInvalidEntropySize = errors.New("bip39: entropy size must be 128/160/192/224/256 bits")

// NewMnemonic appends SHA-256(entropy)[0:ENT/32] as a checksum, splits the
// result into 11-bit groups, and maps each group to a wordlist entry.
// Only the English wordlist is used here since word selection is tied to
// the checksum-bearing entropy itself (tyler-smith/go-bip39 hardcodes its
// internal wordlist to English); non-English callers should treat the
// returned entropy as the portable value and render their own wordlist
// via EntropyToMnemonic-equivalent logic if needed.
func NewMnemonic(entropy []byte) (string, error) {
	if !validEntropyBits[len(entropy)*8] {
		return "", ErrInvalidEntropySize
	}
	return tylersmith.NewMnemonic(entropy)
}

// Generate is a convenience wrapper producing a fresh mnemonic for the
// given word count (12/15/18/21/24).
func Generate(words int) (string, error) {
	bits, ok := wordCountToBits[words]
	if !ok {
		return "", ErrInvalidWordCount
	}
	entropy, err := NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return NewMnemonic(entropy)
}

var wordCountToBits = map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}

// Validate reports whether m is a well-formed BIP-39 mnemonic: a
// 12/15/18/21/24-word phrase over the English wordlist whose checksum
// bits match the recomputed checksum of its recovered entropy.
func Validate(m string) bool {
	return tylersmith.IsMnemonicValid(m)
}

// EntropyFromMnemonic recovers the original entropy from a mnemonic,
// validating its checksum.
func EntropyFromMnemonic(m string) ([]byte, error) {
	if !Validate(m) {
		return nil, ErrInvalidMnemonic
	}
	return tylersmith.EntropyFromMnemonic(m)
}

// ErrInvalidMnemonic is returned by EntropyFromMnemonic for a malformed or
// checksum-failing mnemonic.
var ErrInvalidMnemonic = errors.New("bip39: invalid mnemonic")

// pbkdf2Iterations and seedLen are fixed by BIP-39.
const (
	pbkdf2Iterations = 2048
	seedLen          = 64
)

// ToSeed derives the 64-byte BIP-39 seed from a mnemonic and passphrase:
// PBKDF2-HMAC-SHA512(password=NFKD(mnemonic), salt=NFKD("mnemonic"+passphrase),
// iterations=2048, dklen=64). NFKD normalization is applied to both
// inputs, matching spec.md §4.6. Unlike Validate, ToSeed does not require
// the mnemonic to be checksum-valid — BIP-39 deliberately allows seed
// derivation from any wordlist-matching phrase so offline/air-gapped
// generators can skip validation; callers that need strict mnemonics
// should call Validate first.
func ToSeed(mnemonic, passphrase string) []byte {
	password := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, seedLen, sha512.New)
}
