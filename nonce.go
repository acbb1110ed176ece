package twitterapi

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// nonceAlphabet is the candidate character set for nonce generation:
// the contiguous code points from 'A' through 'z' plus the digits. The
// range deliberately includes the punctuation between 'Z' and 'a'
// ("[\]^_`"), matching the alphabet historically used to sign requests.
// Do not "fix" this to letters-only; the set is kept for compatibility.
const nonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz0123456789"

// A Noncer provides random nonce strings for OAuth requests.
type Noncer interface {
	Nonce() string
}

// Base64Noncer draws 32 characters from nonceAlphabet using
// crypto/rand and returns them as a base64 encoded string. Uniqueness
// across calls is probabilistic, which is all the OAuth nonce contract
// (replay resistance) requires.
type Base64Noncer struct{}

// Nonce provides a random nonce string.
func (n Base64Noncer) Nonce() string {
	max := big.NewInt(int64(len(nonceAlphabet)))
	b := make([]byte, 32)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms
			panic(err)
		}
		b[i] = nonceAlphabet[idx.Int64()]
	}
	return base64.StdEncoding.EncodeToString(b)
}
