package services

import (
	"errors"
	"fmt"
	"time"
	"treehouse/utils"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAccessCode   = errors.New("invalid access code")
	ErrInvalidMembersToken = errors.New("invalid or expired members token")
)

const membersRole = "members"

// MembersService guards the members catalog. The access code is checked
// against an argon2 hash and a successful check yields a signed token.
type MembersService struct {
	codeHash string
	secret   []byte
	expiry   time.Duration
	now      func() time.Time
}

func NewMembersService(codeHash, secret string, expiry time.Duration) *MembersService {
	return &MembersService{
		codeHash: codeHash,
		secret:   []byte(secret),
		expiry:   expiry,
		now:      time.Now,
	}
}

// Grant verifies the access code and returns a token with its expiry.
func (s *MembersService) Grant(code string) (string, time.Time, error) {
	ok, err := utils.VerifyAccessCode(s.codeHash, code)
	if err != nil || !ok {
		return "", time.Time{}, ErrInvalidAccessCode
	}

	now := s.now()
	expiresAt := now.Add(s.expiry)
	claims := jwt.MapClaims{
		"role": membersRole,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign members token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *MembersService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidMembersToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != membersRole {
		return ErrInvalidMembersToken
	}
	return nil
}
