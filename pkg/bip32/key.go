// Package bip32 implements the BIP-32 hierarchical-deterministic
// derivation engine (spec.md §4.5): master-key generation from a seed,
// hardened and non-hardened child derivation, extended-key serialization,
// and derivation-path parsing. The extended-key shape and its Child/Neuter
// split are grounded on the other_examples bip32 reference package
// (tolerant-Seoul-crypto-accounts/pkgs/bip32) and on
// ModChain-secp256k1/ecckd's ExtendedKey, generalized here so the version
// bytes are caller-supplied instead of hardcoded to Bitcoin mainnet — the
// hook spec.md §6's per-coin/per-purpose version-byte registry needs and
// that github.com/tyler-smith/go-bip32 (the teacher's original dependency
// for this job) does not expose.
package bip32

import (
	"encoding/binary"

	"github.com/olehkaliuzhnyi/hdkeyring/pkg/base58"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/ec"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/hash"
)

// HardenedOffset is 2^31, the index at which hardened children begin.
const HardenedOffset uint32 = 0x80000000

// Hardened returns the hardened index for a 0-indexed value.
func Hardened(index uint32) uint32 { return index + HardenedOffset }

// IsHardened reports whether index is a hardened child number.
func IsHardened(index uint32) bool { return index >= HardenedOffset }

// Versions is the pair of 4-byte version prefixes (e.g. xprv/xpub,
// yprv/ypub, zprv/zpub, or their testnet variants) a coin+purpose
// combination serializes extended keys under (spec.md Data Model,
// network_version).
type Versions struct {
	Priv [4]byte
	Pub  [4]byte
}

// ExtendedKey is the central BIP-32 entity (spec.md §3): either a 32-byte
// private scalar or a 33-byte compressed public point, paired with a
// 32-byte chain code and path metadata. Immutable once constructed —
// every derivation returns a new value.
type ExtendedKey struct {
	versions    Versions
	depth       uint8
	parentFP    [4]byte
	childNumber uint32
	chainCode   [32]byte
	key         []byte // 32-byte scalar (private) or 33-byte compressed point (public)
	isPrivate   bool
}

// FromSeed derives the master extended key from a seed of 16-64 bytes
// (spec.md §4.5 "Master from seed"). versions supplies the network
// version-byte pair the caller's coin+purpose combination uses.
func FromSeed(seed []byte, versions Versions) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}

	i := hash.HMACSHA512([]byte("Bitcoin seed"), seed)
	il, ir := i[:32], i[32:]

	if !ec.IsValidPrivateKey(il) {
		return nil, ErrInvalidSeed
	}

	k := &ExtendedKey{
		versions:  versions,
		depth:     0,
		isPrivate: true,
		key:       append([]byte(nil), il...),
	}
	copy(k.chainCode[:], ir)
	return k, nil
}

// IsPrivate reports whether k holds private key material.
func (k *ExtendedKey) IsPrivate() bool { return k.isPrivate }

// Depth returns the derivation depth; 0 at the master key.
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ParentFingerprint returns the 4-byte fingerprint of the parent key used
// to derive k; zero at the master key.
func (k *ExtendedKey) ParentFingerprint() [4]byte { return k.parentFP }

// ChildNumber returns the 32-bit child index used to derive k.
func (k *ExtendedKey) ChildNumber() uint32 { return k.childNumber }

// ChainCode returns the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	out := make([]byte, 32)
	copy(out, k.chainCode[:])
	return out
}

// Versions returns the version-byte pair k was constructed with.
func (k *ExtendedKey) Versions() Versions { return k.versions }

// PrivateKeyBytes returns the 32-byte scalar, or ErrPublicKeyOnly if k has
// been neutered.
func (k *ExtendedKey) PrivateKeyBytes() ([]byte, error) {
	if !k.isPrivate {
		return nil, ErrPublicKeyOnly
	}
	out := make([]byte, 32)
	copy(out, k.key)
	return out, nil
}

// PublicKeyBytes returns the 33-byte compressed public key, computing it
// from the private scalar (K = k·G) if necessary.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	if !k.isPrivate {
		out := make([]byte, 33)
		copy(out, k.key)
		return out
	}
	pub, err := ec.PrivToPub(k.key)
	if err != nil {
		// FromSeed, deriveChildAt and FromExtendedKey never construct a
		// private ExtendedKey with an out-of-range scalar, so this is
		// unreachable in practice.
		panic("bip32: stored private key is invalid: " + err.Error())
	}
	return pub
}

// Fingerprint is the first 4 bytes of Hash160(compressed pubkey); used as
// the *parent* fingerprint when serializing a child.
func (k *ExtendedKey) Fingerprint() [4]byte {
	h := hash.Hash160(k.PublicKeyBytes())
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// Neuter returns the public-only twin of k. A public key's Neuter is
// itself.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k.clone()
	}
	n := k.clone()
	n.key = k.PublicKeyBytes()
	n.isPrivate = false
	return n
}

func (k *ExtendedKey) clone() *ExtendedKey {
	c := &ExtendedKey{
		versions:    k.versions,
		depth:       k.depth,
		parentFP:    k.parentFP,
		childNumber: k.childNumber,
		chainCode:   k.chainCode,
		isPrivate:   k.isPrivate,
		key:         append([]byte(nil), k.key...),
	}
	return c
}

func ser32(i uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return b
}

// WIF encodes k's private scalar as Wallet Import Format:
// Base58Check(version || 32-byte scalar || 0x01) for a compressed public
// key (spec.md §4.8 "private_key()").
func (k *ExtendedKey) WIF(version byte) (string, error) {
	priv, err := k.PrivateKeyBytes()
	if err != nil {
		return "", err
	}
	payload := make([]byte, 0, 34)
	payload = append(payload, priv...)
	payload = append(payload, 0x01)
	return base58.CheckEncode(version, payload), nil
}
