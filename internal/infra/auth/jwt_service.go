// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"counterhub/config"
	"counterhub/internal/domain/service"
	"counterhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "counterhub"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte
	userTTL  time.Duration
	adminTTL time.Duration
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.SecretKey.Access),
		userTTL:  cfg.Auth.UserTokenTTL,
		adminTTL: cfg.Auth.AdminTokenTTL,
		now:      time.Now,
	}, nil
}

func (s *jwtService) GenerateUserToken(userID, appID, name string) (string, error) {
	if userID == "" || appID == "" {
		return "", errors.New("user token requires user and app")
	}

	return s.sign(&service.Claims{
		UserID: userID,
		AppID:  appID,
		Name:   name,
	}, userID, s.userTTL)
}

func (s *jwtService) GenerateAdminToken(username string) (string, error) {
	return s.sign(&service.Claims{
		Username: username,
		IsAdmin:  true,
	}, username, s.adminTTL)
}

// ValidateToken checks the signature, issuer and expiry of tokenString.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

func (s *jwtService) sign(claims *service.Claims, subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
