package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomSuffix returns n random base-36 characters.
func randomSuffix(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a fixed character rather than aborting a request.
			buf[i] = '0'
			continue
		}
		buf[i] = idAlphabet[v.Int64()]
	}
	return string(buf)
}

// NewSessionID mints a public chat-session identifier,
// e.g. session_1724900000000_x4k9q2m1p.
func NewSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), randomSuffix(9))
}

// NewApplicationID mints the public identifier of one contact submission,
// e.g. contact_1724900000000_a81kd02mz.
func NewApplicationID() string {
	return fmt.Sprintf("contact_%d_%s", time.Now().UnixMilli(), randomSuffix(9))
}
