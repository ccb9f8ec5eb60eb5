// Package auth provides the JWT implementation of the session collaborator
// capability.
package auth

import (
	"monsoon/config"
	"monsoon/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService validates HS256 bearer tokens minted by the external identity
// provider and extracts the identity claims they carry.
type jwtService struct {
	secret string
	issuer string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: cfg.Session.Secret,
		issuer: cfg.Session.Issuer,
	}, nil
}

// ValidateToken checks the validity of a token string and returns the
// identity it asserts.
func (s *jwtService) ValidateToken(tokenString string) (*service.IdentityClaims, error) {
	parseOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(s.secret), nil
	}, parseOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("user id missing from token")
	}

	identity := &service.IdentityClaims{UserID: sub}
	if v, ok := claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["first_name"].(string); ok {
		identity.FirstName = v
	}
	if v, ok := claims["last_name"].(string); ok {
		identity.LastName = v
	}
	if v, ok := claims["profile_image_url"].(string); ok {
		identity.ProfileImageURL = v
	}

	return identity, nil
}
