package hdwallet

import "errors"

// ErrCoinNotAllowed is returned when a coin is not in a purpose's allowed
// set (spec.md §7 "CoinNotAllowed"), e.g. Dogecoin under BIP-84.
var ErrCoinNotAllowed = errors.New("hdwallet: coin not allowed for this purpose")

// ErrWrongDepth is returned when a BIP-44-tree step (Purpose/Coin/Account/
// Change/AddressIndex) is called out of order (spec.md §7 "DepthError").
var ErrWrongDepth = errors.New("hdwallet: operation not valid at current derivation depth")

// ErrUnsupportedAddressFamily is returned when Address() is called for a
// coin/purpose combination with no matching encoder.
var ErrUnsupportedAddressFamily = errors.New("hdwallet: no address encoder for this coin/purpose combination")
