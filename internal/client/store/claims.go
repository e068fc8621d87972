package store

import (
	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	ID     int64       `json:"id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Avatar string      `json:"avatar"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// userFromToken reads the identity claims without checking the signature.
// The result is only a cache until /verify answers; it never grants access.
func userFromToken(token string) (*models.User, bool) {
	var c tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, false
	}
	if c.ID == 0 {
		return nil, false
	}
	return &models.User{ID: c.ID, Email: c.Email, Name: c.Name, Avatar: c.Avatar, Role: c.Role}, true
}
