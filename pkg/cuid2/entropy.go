package cuid2

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// CreateEntropy returns a string of base-36 digits drawn from random, appending digits until
// the result is no shorter than length. A non-positive length uses DefaultEntropyLength.
func CreateEntropy(length int, random RandomFunc) string {
	if length <= 0 {
		length = DefaultEntropyLength
	}

	var sb strings.Builder
	sb.Grow(length)
	for sb.Len() < length {
		sb.WriteString(strconv.FormatInt(int64(random()*36), 36))
	}
	return sb.String()
}

// Hash digests input with SHA3-512, renders the digest as a big-endian unsigned integer in
// base 36 and drops the leading digit. The output length depends on the digest magnitude.
func Hash(input string) string {
	h := sha3.New512()
	h.Write([]byte(input))

	n := new(big.Int).SetBytes(h.Sum(nil))
	return n.Text(36)[1:]
}

// CreateFingerprint hashes BigLength characters of entropy and keeps at most BigLength
// characters of the result. A short hash is not padded.
func CreateFingerprint(random RandomFunc) string {
	hashed := Hash(CreateEntropy(BigLength, random))
	if len(hashed) > BigLength {
		return hashed[:BigLength]
	}
	return hashed
}
