// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/alexedwards/argon2id"
)

// NewCrypto builds a Crypto with argon2id parameters taken from the
// environment, falling back to sane defaults. Reads os.Getenv directly so
// the package does not depend on commons.
func NewCrypto() *Crypto {
	uintEnv := func(key string, fallback int) int {
		if v := os.Getenv(key); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
		return fallback
	}
	return &Crypto{
		ArgonTime:    uint32(uintEnv("ARGON2_TIME", 1)),
		ArgonMemory:  uint32(uintEnv("ARGON2_MEMORY", 65536)),
		ArgonThreads: uint8(uintEnv("ARGON2_THREADS", 2)),
		ArgonKeyLen:  uint32(uintEnv("ARGON2_KEYLEN", 32)),
		ArgonSaltLen: uint32(uintEnv("ARGON2_SALTLEN", 16)),
	}
}

func (c *Crypto) HashPassword(password string) (string, error) {
	params := &argon2id.Params{
		Memory:      c.ArgonMemory,
		Iterations:  c.ArgonTime,
		Parallelism: c.ArgonThreads,
		SaltLength:  c.ArgonSaltLen,
		KeyLength:   c.ArgonKeyLen,
	}
	hash, err := argon2id.CreateHash(password, params)
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Crypto) VerifyPassword(password, encodedHash string) error {
	match, err := argon2id.ComparePasswordAndHash(password, encodedHash)
	if err != nil {
		return err
	}
	if !match {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// GenerateRandomString returns prefix + length random bytes in the given
// encoding. Used for the public IDs (col_, lnk_, sub_, st_).
func GenerateRandomString(prefix string, length int, encoding string) (string, error) {
	supportedEncodings := []string{"hex", "base64"}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	switch encoding {
	case "hex":
		return prefix + hex.EncodeToString(b), nil
	case "base64":
		return prefix + base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s, supported encodings are: %s", encoding, supportedEncodings)
	}
}
