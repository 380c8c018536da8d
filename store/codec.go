package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/expensex/expensex-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedIdentity = errors.New("malformed identity blob")

// IdentityCodec serializes the session identity for its slot.
type IdentityCodec interface {
	Encode(id models.Identity) (string, error)
	Decode(blob string) (models.Identity, error)
}

func validIdentity(id models.Identity) error {
	if id.ID == "" || id.Email == "" {
		return ErrMalformedIdentity
	}
	if id.Role != models.RoleAdmin && id.Role != models.RoleUser {
		return fmt.Errorf("%w: unknown role %q", ErrMalformedIdentity, id.Role)
	}
	return nil
}

// JSONCodec stores the identity as plain JSON.
type JSONCodec struct{}

func (JSONCodec) Encode(id models.Identity) (string, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec) Decode(blob string) (models.Identity, error) {
	var id models.Identity
	if err := json.Unmarshal([]byte(blob), &id); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrMalformedIdentity, err)
	}
	if err := validIdentity(id); err != nil {
		return models.Identity{}, err
	}
	return id, nil
}

// JWTCodec stores the identity as an HS256 token so an edited slot is
// rejected on restore.
type JWTCodec struct {
	key []byte
}

func NewJWTCodec(key string) *JWTCodec {
	return &JWTCodec{key: []byte(key)}
}

type identityClaims struct {
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *JWTCodec) Encode(id models.Identity) (string, error) {
	claims := identityClaims{
		Email:    id.Email,
		FullName: id.FullName,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

func (c *JWTCodec) Decode(blob string) (models.Identity, error) {
	claims := &identityClaims{}
	_, err := jwt.ParseWithClaims(blob, claims, func(t *jwt.Token) (interface{}, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrMalformedIdentity, err)
	}

	id := models.Identity{
		ID:       claims.Subject,
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     claims.Role,
	}
	if err := validIdentity(id); err != nil {
		return models.Identity{}, err
	}
	return id, nil
}
