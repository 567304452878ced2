package bip32

import (
	"encoding/hex"
	"testing"
)

// bitcoinVersions are the standard xprv/xpub version bytes used by every
// BIP-32 test vector below (spec.md §8 S1).
var bitcoinVersions = Versions{
	Priv: [4]byte{0x04, 0x88, 0xAD, 0xE4},
	Pub:  [4]byte{0x04, 0x88, 0xB2, 0x1E},
}

func mustSeed(t *testing.T, h string) []byte {
	t.Helper()
	b, err := hex.DecodeString(h)
	if err != nil {
		t.Fatalf("bad test hex: %v", err)
	}
	return b
}

// TestBIP32TestVector1 reproduces the official BIP-32 test vector 1
// (spec.md §8 S1): seed 000102030405060708090a0b0c0d0e0f.
func TestBIP32TestVector1(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")

	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}

	wantMasterPub := "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	wantMasterPriv := "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"

	if got := master.String(); got != wantMasterPriv {
		t.Errorf("master xprv = %s, want %s", got, wantMasterPriv)
	}
	if got := master.Neuter().String(); got != wantMasterPub {
		t.Errorf("master xpub = %s, want %s", got, wantMasterPub)
	}

	// m/0'
	child0h, err := master.Child(Hardened(0))
	if err != nil {
		t.Fatalf("Child(0'): %v", err)
	}
	wantChild0hPriv := "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	wantChild0hPub := "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw"
	if got := child0h.String(); got != wantChild0hPriv {
		t.Errorf("m/0' xprv = %s, want %s", got, wantChild0hPriv)
	}
	if got := child0h.Neuter().String(); got != wantChild0hPub {
		t.Errorf("m/0' xpub = %s, want %s", got, wantChild0hPub)
	}

	// m/0'/1
	child1, err := child0h.Child(1)
	if err != nil {
		t.Fatalf("Child(1): %v", err)
	}
	wantChild1Pub := "xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ"
	if got := child1.Neuter().String(); got != wantChild1Pub {
		t.Errorf("m/0'/1 xpub = %s, want %s", got, wantChild1Pub)
	}

	// m/0'/1/2'
	child2h, err := child1.Child(Hardened(2))
	if err != nil {
		t.Fatalf("Child(2'): %v", err)
	}

	// m/0'/1/2'/2
	child2, err := child2h.Child(2)
	if err != nil {
		t.Fatalf("Child(2): %v", err)
	}

	// m/0'/1/2'/2/1000000000
	final, err := child2.Child(1000000000)
	if err != nil {
		t.Fatalf("Child(1000000000): %v", err)
	}
	wantFinalPub := "xpub6H1LXWLaKsWFhvm6RVpEL9P4KfRZSW7abD2ttkWP3SSQvnyA8FSVqNTEcYFgJS2UaFcxupHiYkro49S8yGasTvXEYBVPamhGW6cFJodrTHy"
	wantFinalPriv := "xprvA41z7zogVVwxVSgdKUHDy1SKmdb533PjDz7J6N6mV6uS3ze1ai8FHa8kmHScGpWmj4WggLyQjgPie1rFSruoUihUZREPSL39UNdE3BBDu76"
	if got := final.Neuter().String(); got != wantFinalPub {
		t.Errorf("final xpub = %s, want %s", got, wantFinalPub)
	}
	if got := final.String(); got != wantFinalPriv {
		t.Errorf("final xprv = %s, want %s", got, wantFinalPriv)
	}

	// the same path via the string parser should match step-by-step derivation
	viaPath, err := master.DerivePathString("m/0'/1/2'/2/1000000000")
	if err != nil {
		t.Fatalf("DerivePathString: %v", err)
	}
	if viaPath.String() != final.String() {
		t.Errorf("DerivePathString result diverges from manual derivation")
	}
}

func TestFromSeedRejectsBadLength(t *testing.T) {
	if _, err := FromSeed(make([]byte, 8), bitcoinVersions); err != ErrInvalidSeed {
		t.Errorf("expected ErrInvalidSeed for too-short seed, got %v", err)
	}
	if _, err := FromSeed(make([]byte, 65), bitcoinVersions); err != ErrInvalidSeed {
		t.Errorf("expected ErrInvalidSeed for too-long seed, got %v", err)
	}
}

func TestHardenedFromPublicFails(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	pub := master.Neuter()
	if _, err := pub.Child(Hardened(0)); err != ErrHardenedFromPublic {
		t.Errorf("expected ErrHardenedFromPublic, got %v", err)
	}
}

func TestNonHardenedDerivationMatchesAcrossPrivPub(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}

	privChild, err := master.Child(5)
	if err != nil {
		t.Fatalf("Child(5) on private: %v", err)
	}

	pubChild, err := master.Neuter().Child(5)
	if err != nil {
		t.Fatalf("Child(5) on public: %v", err)
	}

	if privChild.Neuter().String() != pubChild.String() {
		t.Error("CKDpriv and CKDpub diverge for a non-hardened index")
	}
}

func TestNeuterIsIdempotent(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	pub := master.Neuter()
	if pub.Neuter().String() != pub.String() {
		t.Error("Neuter on an already-public key should be a no-op")
	}
}

func TestPrivateKeyBytesFailsOnPublicKey(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if _, err := master.Neuter().PrivateKeyBytes(); err != ErrPublicKeyOnly {
		t.Errorf("expected ErrPublicKeyOnly, got %v", err)
	}
}

func TestFromExtendedKeyRoundTrip(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	s := master.String()

	parsed, err := FromExtendedKey(s, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromExtendedKey: %v", err)
	}
	if parsed.String() != s {
		t.Errorf("round trip diverged: got %s, want %s", parsed.String(), s)
	}
	if !parsed.IsPrivate() {
		t.Error("parsed key should be private")
	}
}

func TestFromExtendedKeyRejectsWrongVersion(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	other := Versions{
		Priv: [4]byte{0x04, 0x88, 0xAD, 0xE5},
		Pub:  [4]byte{0x04, 0x88, 0xB2, 0x1F},
	}
	if _, err := FromExtendedKey(master.String(), other); err != ErrInvalidExtendedKey {
		t.Errorf("expected ErrInvalidExtendedKey for mismatched version, got %v", err)
	}
}

func TestFromExtendedKeyRejectsGarbage(t *testing.T) {
	if _, err := FromExtendedKey("not-a-valid-extended-key", bitcoinVersions); err != ErrInvalidExtendedKey {
		t.Errorf("expected ErrInvalidExtendedKey for garbage input, got %v", err)
	}
}
