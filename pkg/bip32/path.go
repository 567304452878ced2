package bip32

import (
	"strconv"
	"strings"
)

// Path is a parsed BIP-32 derivation path: a sequence of child indices,
// already combined with HardenedOffset where the source string marked
// them hardened (spec.md §4.5 "Derivation path parsing").
type Path []uint32

// ParsePath parses a derivation path string such as "m/44'/0'/0'/0/0" or
// "m/44h/0h/0h/0/0". The leading "m" (or "M") is optional. Each segment
// is a base-10 unsigned index below 2^31, optionally suffixed with "'"
// or "h"/"H" to mark it hardened. Whitespace anywhere in the string is
// rejected, as is an empty segment (consecutive or trailing slashes).
func ParsePath(path string) (Path, error) {
	s := path
	if strings.ContainsAny(s, " \t\n\r") {
		return nil, ErrInvalidPath
	}

	if s == "" {
		return nil, ErrInvalidPath
	}
	if s == "m" || s == "M" {
		return Path{}, nil
	}

	if strings.HasPrefix(s, "m/") || strings.HasPrefix(s, "M/") {
		s = s[2:]
	} else if strings.HasPrefix(s, "/") {
		s = s[1:]
	}

	segments := strings.Split(s, "/")
	out := make(Path, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, ErrInvalidPath
		}

		hardened := false
		switch seg[len(seg)-1] {
		case '\'', 'h', 'H':
			hardened = true
			seg = seg[:len(seg)-1]
		}
		if seg == "" {
			return nil, ErrInvalidPath
		}

		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil || n >= uint64(HardenedOffset) {
			return nil, ErrInvalidPath
		}

		index := uint32(n)
		if hardened {
			index = Hardened(index)
		}
		out = append(out, index)
	}
	return out, nil
}

// Derive walks k through every index in p in order, retrying invalid
// children per Child's rule at each step.
func (k *ExtendedKey) Derive(p Path) (*ExtendedKey, error) {
	cur := k
	for _, index := range p {
		next, err := cur.Child(index)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// DerivePathString parses path and derives it from k in one step.
func (k *ExtendedKey) DerivePathString(path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.Derive(p)
}

// String renders p back into "m/44'/0'/0'/0/0" form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, index := range p {
		b.WriteByte('/')
		if IsHardened(index) {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return b.String()
}
