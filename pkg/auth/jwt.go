package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

const issuer = "pupu"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(identity Identity, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Identity is what the account service puts into a token at sign-in.
type Identity struct {
	UserID              int
	Role                domain.Role
	PaidAccessExpiresAt *time.Time
}

type Claims struct {
	UserID      int         `json:"user_id"`
	Role        domain.Role `json:"role"`
	PaidAccessU int64       `json:"paid_access_expires_at,omitempty"`
	jwt.StandardClaims
}

// PaidAccessExpiresAt returns the paid access expiry carried by the token.
func (c *Claims) PaidAccessExpiresAt() *time.Time {
	if c.PaidAccessU == 0 {
		return nil
	}
	t := time.Unix(c.PaidAccessU, 0)
	return &t
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(identity Identity, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: identity.UserID,
		Role:   identity.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}
	if identity.PaidAccessExpiresAt != nil {
		claims.PaidAccessU = identity.PaidAccessExpiresAt.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer || !claims.Role.Valid() {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
