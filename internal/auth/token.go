// internal/auth/token.go
package auth

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blowfish"
)

// ErrInvalidCipherKey indicates the configured cipher key is not valid
// hex or not a usable Blowfish key length.
var ErrInvalidCipherKey = errors.New("invalid cipher key")

// serialLen is the fixed length the deployed client pads serials to
// before hashing.
const serialLen = 36

// Hasher reproduces the verification token the game client computes
// from a serial, username and password. The algorithm is fixed by the
// deployed client and must not change: serial normalization, NUL
// padding, MD5 digest, Blowfish-ECB encryption, hex encoding.
//
// A Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	cipher *blowfish.Cipher
}

// NewHasher builds a Hasher from the hex-encoded server cipher key.
// A key that does not decode, or decodes to a length Blowfish rejects,
// is a configuration error: the caller must not start serving.
func NewHasher(keyHex string) (*Hasher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: not hex: %v", ErrInvalidCipherKey, err)
	}
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCipherKey, err)
	}
	return &Hasher{cipher: c}, nil
}

var serialCleaner = strings.NewReplacer("-", "", " ", "")

// ComputeToken derives the 32-hex-character verification token.
//
// The serial has every dash and space removed (nothing else) and is
// right-padded with NUL bytes to 36 characters; a serial already 36 or
// longer after cleaning is used as-is. The MD5 digest of
// paddedSerial + username + "-" + password is then encrypted as two
// Blowfish-ECB blocks. Pure and deterministic for all inputs,
// including empty strings.
func (h *Hasher) ComputeToken(serial, username, password string) string {
	s := serialCleaner.Replace(serial)
	if len(s) < serialLen {
		s += strings.Repeat("\x00", serialLen-len(s))
	}

	// The client hashes the MD5 hex digest's raw bytes, which is the
	// digest itself: 16 bytes, exactly two cipher blocks.
	sum := md5.Sum([]byte(s + username + "-" + password))

	var enc [md5.Size]byte
	h.cipher.Encrypt(enc[:8], sum[:8])
	h.cipher.Encrypt(enc[8:], sum[8:])
	return hex.EncodeToString(enc[:])
}
