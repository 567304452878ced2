package bip32

import (
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/base58"
	"github.com/olehkaliuzhnyi/hdkeyring/pkg/ec"
)

// serializedLen is the fixed wire length of a BIP-32 extended key: 4-byte
// version + 1-byte depth + 4-byte parent fingerprint + 4-byte child number
// + 32-byte chain code + 33-byte key material.
const serializedLen = 78

// Serialize encodes k into the raw 78-byte extended-key layout (spec.md
// §6, "Extended key serialization"), before Base58Check framing.
func (k *ExtendedKey) Serialize() []byte {
	out := make([]byte, 0, serializedLen)

	if k.isPrivate {
		out = append(out, k.versions.Priv[:]...)
	} else {
		out = append(out, k.versions.Pub[:]...)
	}
	out = append(out, byte(k.depth))
	out = append(out, k.parentFP[:]...)
	out = append(out, ser32(k.childNumber)...)
	out = append(out, k.chainCode[:]...)

	if k.isPrivate {
		out = append(out, 0x00)
		out = append(out, k.key...)
	} else {
		out = append(out, k.key...)
	}
	return out
}

// String returns the Base58Check-encoded extended key (xprv.../xpub...
// under Bitcoin's default version bytes, or the equivalent for whatever
// Versions k was constructed with).
func (k *ExtendedKey) String() string {
	return base58.Bitcoin.CheckEncode(k.Serialize())
}

// FromExtendedKey parses a Base58Check-encoded extended key string,
// validating its length and that its version bytes match either half of
// versions, and that a private key field holds a scalar in [1, n-1]. The
// returned key's isPrivate flag is set according to which half matched.
func FromExtendedKey(s string, versions Versions) (*ExtendedKey, error) {
	raw, err := base58.Bitcoin.CheckDecode(s)
	if err != nil {
		return nil, ErrInvalidExtendedKey
	}
	if len(raw) != serializedLen {
		return nil, ErrInvalidExtendedKey
	}

	var version [4]byte
	copy(version[:], raw[0:4])

	var isPrivate bool
	switch version {
	case versions.Priv:
		isPrivate = true
	case versions.Pub:
		isPrivate = false
	default:
		return nil, ErrInvalidExtendedKey
	}

	k := &ExtendedKey{
		versions:    versions,
		depth:       raw[4],
		childNumber: beUint32(raw[9:13]),
		isPrivate:   isPrivate,
	}
	copy(k.parentFP[:], raw[5:9])
	copy(k.chainCode[:], raw[13:45])

	keyField := raw[45:78]
	if isPrivate {
		if keyField[0] != 0x00 || !ec.IsValidPrivateKey(keyField[1:]) {
			return nil, ErrInvalidExtendedKey
		}
		k.key = append([]byte(nil), keyField[1:]...)
	} else {
		k.key = append([]byte(nil), keyField...)
	}
	return k, nil
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
