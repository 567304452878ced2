package bip32

import "testing"

func TestParsePathValid(t *testing.T) {
	cases := map[string]int{
		"m/44'/0'/0'/0/0": 5,
		"m/44h/0h/0h/0/0": 5,
		"m":               0,
		"M":               0,
		"m/0":             1,
		"0'/1/2'":         3,
	}
	for path, wantLen := range cases {
		p, err := ParsePath(path)
		if err != nil {
			t.Errorf("ParsePath(%q): unexpected error %v", path, err)
			continue
		}
		if len(p) != wantLen {
			t.Errorf("ParsePath(%q) length = %d, want %d", path, len(p), wantLen)
		}
	}
}

func TestParsePathHardenedMarkersAgree(t *testing.T) {
	a, err := ParsePath("m/44'/0'")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	b, err := ParsePath("m/44h/0h")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("length mismatch")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d: %d != %d", i, a[i], b[i])
		}
	}
	if !IsHardened(a[0]) || !IsHardened(a[1]) {
		t.Error("expected both segments to be hardened")
	}
}

func TestParsePathRejectsWhitespace(t *testing.T) {
	for _, bad := range []string{"m/44' /0'", "m /44'", "m/44'\t/0'"} {
		if _, err := ParsePath(bad); err != ErrInvalidPath {
			t.Errorf("ParsePath(%q) = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestParsePathRejectsEmptySegments(t *testing.T) {
	for _, bad := range []string{"m//0", "m/0/", "m/", ""} {
		if _, err := ParsePath(bad); err != ErrInvalidPath {
			t.Errorf("ParsePath(%q) = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestParsePathRejectsOverflow(t *testing.T) {
	for _, bad := range []string{"m/2147483648", "m/99999999999999", "m/-1"} {
		if _, err := ParsePath(bad); err != ErrInvalidPath {
			t.Errorf("ParsePath(%q) = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestParsePathRejectsNonDigit(t *testing.T) {
	for _, bad := range []string{"m/abc", "m/4a'", "m/+4"} {
		if _, err := ParsePath(bad); err != ErrInvalidPath {
			t.Errorf("ParsePath(%q) = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	const path = "m/44'/0'/0'/0/0"
	p, err := ParsePath(path)
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := p.String(); got != path {
		t.Errorf("String() = %s, want %s", got, path)
	}
}

func TestDerivePathStringMatchesVector(t *testing.T) {
	seed := mustSeed(t, "000102030405060708090a0b0c0d0e0f")
	master, err := FromSeed(seed, bitcoinVersions)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	got, err := master.DerivePathString("m/0'")
	if err != nil {
		t.Fatalf("DerivePathString: %v", err)
	}
	want := "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	if got.String() != want {
		t.Errorf("m/0' via DerivePathString = %s, want %s", got.String(), want)
	}
}
