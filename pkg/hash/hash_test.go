package hash

import (
	"encoding/hex"
	"testing"
)

func TestSHA256(t *testing.T) {
	got := hex.EncodeToString(SHA256([]byte("abc")))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"[:64]
	if got != want {
		t.Errorf("SHA256(abc) = %s, want %s", got, want)
	}
}

func TestHash160Length(t *testing.T) {
	got := Hash160([]byte("test pubkey bytes"))
	if len(got) != 20 {
		t.Errorf("Hash160 length = %d, want 20", len(got))
	}
}

func TestHMACSHA512Deterministic(t *testing.T) {
	a := HMACSHA512([]byte("Bitcoin seed"), []byte{0x00, 0x01, 0x02})
	b := HMACSHA512([]byte("Bitcoin seed"), []byte{0x00, 0x01, 0x02})
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Error("HMACSHA512 is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("HMACSHA512 length = %d, want 64", len(a))
	}
}

func TestKeccak256KnownVector(t *testing.T) {
	// Keccak-256 of empty input (the Ethereum/legacy variant).
	got := hex.EncodeToString(Keccak256(nil))
	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got != want {
		t.Errorf("Keccak256(nil) = %s, want %s", got, want)
	}
}

func TestDoubleSHA256(t *testing.T) {
	once := SHA256([]byte("hello"))
	twice := SHA256(once)
	got := DoubleSHA256([]byte("hello"))
	if hex.EncodeToString(got) != hex.EncodeToString(twice) {
		t.Error("DoubleSHA256 does not match manual double hash")
	}
}
