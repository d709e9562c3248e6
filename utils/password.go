package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashAccessCode encodes the members access code with argon2 so the plain
// code never needs to live in config or memory after startup.
func HashAccessCode(code string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(code))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyAccessCode checks a submitted code against an encoded hash.
func VerifyAccessCode(encodedHash, code string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(code), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
