package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// MinSecretKeyLength is the shortest signing secret accepted from config.
const MinSecretKeyLength = 32

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// EphemeralSecretKey is used when no SECRET_KEY is configured. Unlock tokens
// signed with it do not survive a restart.
func EphemeralSecretKey() ([]byte, error) {
	key, err := RandomString(2*MinSecretKeyLength, secretKeyAlphabet)
	if err != nil {
		return nil, err
	}
	return []byte(key), nil
}

// CryptoRandom draws uniform indexes from crypto/rand.
type CryptoRandom struct{}

// Intn returns a value in [0, n). It returns 0 when n <= 0 or the system
// source fails.
func (CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(value.Int64())
}
