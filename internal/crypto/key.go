package crypto

import (
	"crypto/md5"
	"encoding/hex"
)

// keyLen is the number of hex characters kept from the MD5 digest.
const keyLen = 16

// DeriveKey returns the 16-byte key for (identifier, password).
//
// The key is the first 16 characters of the lowercase hex MD5 digest of
// identifier + "-" + password, taken as ASCII bytes. It is a single unsalted
// hash pass and must not be strengthened: stored ciphertexts depend on it.
func DeriveKey(identifier, password string) []byte {
	sum := md5.Sum([]byte(identifier + "-" + password))

	hexSum := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(hexSum, sum[:])

	return hexSum[:keyLen]
}
