package addr

import (
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Package addr canonicalizes input addresses before they are submitted for
// screening. The service accepts addresses from many chains, so anything
// that does not look like a 0x account passes through untouched.

var hexAddrRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Normalize trims surrounding whitespace and, for 0x-prefixed 40-hex
// addresses, applies the EIP-55 mixed-case checksum so the same account
// always screens under one spelling.
func Normalize(address string) string {
	a := strings.TrimSpace(address)
	if !hexAddrRe.MatchString(a) {
		return a
	}
	return Checksum(a)
}

// Checksum returns the EIP-55 form of a 0x hex address: each alphabetic
// nibble is uppercased when the corresponding nibble of
// keccak256(lowercase hex) is >= 8.
func Checksum(address string) string {
	lower := strings.ToLower(strings.TrimPrefix(address, "0x"))
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := hex.EncodeToString(h.Sum(nil))
	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		if sum[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}
