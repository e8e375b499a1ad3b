package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

var pattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// New mints a 24-character hexadecimal document identifier: a 4-byte
// big-endian unix timestamp followed by 8 random bytes.
func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// IsValid reports whether s is a well-formed 24-character hexadecimal
// document identifier.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}
