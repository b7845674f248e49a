package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sapportal/pkg/config"
)

var cfg *config.JWTConfig

// PortalClaims represents the JWT claims issued on a successful portal login.
// SubjectID is the customer, vendor or employee ID the token was issued for;
// the server is the sole authority on token validity.
type PortalClaims struct {
	SubjectID  string `json:"subject_id"`
	Name       string `json:"name,omitempty"`
	Portal     string `json:"portal"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	jwt.RegisteredClaims
}

// Initialize sets the JWT configuration for the package. An empty signing
// key is a wiring error, not a runtime condition, so it panics.
func Initialize(jwtConfig *config.JWTConfig) {
	if jwtConfig == nil || jwtConfig.SigningKey == "" {
		panic("jwtutil: signing key must not be empty")
	}
	cfg = jwtConfig
}

// GenerateToken creates a signed token for the given portal subject
func GenerateToken(subjectID, name, portal, role, department string) (string, error) {
	if cfg == nil {
		return "", errors.New("JWT configuration not provided")
	}

	claims := PortalClaims{
		SubjectID:  subjectID,
		Name:       name,
		Portal:     portal,
		Role:       role,
		Department: department,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SigningKey))
}

// ValidateToken validates and parses a bearer token. Expired or tampered
// tokens return an error regardless of how the remaining claims look.
func ValidateToken(tokenString string) (*PortalClaims, error) {
	if cfg == nil {
		return nil, errors.New("JWT configuration not provided")
	}

	token, err := jwt.ParseWithClaims(tokenString, &PortalClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.SigningKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*PortalClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
