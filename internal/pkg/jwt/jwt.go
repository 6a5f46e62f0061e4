package jwt

import (
	"errors"
	"time"

	"do-coupon-system/internal/domain/account"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "do-coupon-system"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims mirror the client cookies set on login; the token is what the server trusts.
type Claims struct {
	Username        string `json:"username"`
	Role            string `json:"role"`
	MembershipField string `json:"membership_field,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	parser        *jwt.Parser
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// Duration is also the max age of the session cookie.
func (s *Service) Duration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(username string, role account.Role, membershipField string) (string, error) {
	if !role.IsValid() {
		return "", account.ErrInvalidRole
	}
	now := time.Now()
	claims := Claims{
		Username:        username,
		Role:            role.String(),
		MembershipField: membershipField,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

// ValidateToken rejects tokens from other issuers and tokens naming a role
// outside the closed Admin/Provider set.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Username == "" || !account.Role(claims.Role).IsValid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
