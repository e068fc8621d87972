// Package auth holds the credential primitives: bcrypt password hashing,
// HS256 bearer tokens and avatar URL derivation.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/common"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity embedded in a bearer token.
type Claims struct {
	UserID int64       `json:"id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Avatar string      `json:"avatar"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// ClaimsFor copies the identity fields of u.
func ClaimsFor(u *models.User) Claims {
	return Claims{UserID: u.ID, Email: u.Email, Name: u.Name, Avatar: u.Avatar, Role: u.Role}
}

// Tokens issues and verifies HS256 tokens with a shared secret. Now is the
// clock used for both issuing and expiry checks; nil means time.Now.
type Tokens struct {
	Secret   []byte
	Validity time.Duration
	Now      func() time.Time
}

func NewTokens(secret string, validity time.Duration) *Tokens {
	return &Tokens{Secret: []byte(secret), Validity: validity}
}

func (t *Tokens) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Issue signs claims, stamping iat and exp.
func (t *Tokens) Issue(claims Claims) (string, error) {
	issued := t.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(t.Validity)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry. Expired tokens yield
// common.ErrTokenExpired; anything else wrong yields common.ErrInvalidToken.
func (t *Tokens) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return t.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
