package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	paidUntil := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name           string
		identity       Identity
		expirationTime time.Time
	}{
		{
			name:           "Plain user",
			identity:       Identity{UserID: 123, Role: domain.RoleUser},
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Member with expiry",
			identity:       Identity{UserID: 123, Role: domain.RoleMember, PaidAccessExpiresAt: &paidUntil},
			expirationTime: time.Now().Add(time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.identity, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := jwtService.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, tt.identity.UserID, claims.UserID)
			assert.Equal(t, tt.identity.Role, claims.Role)
			if tt.identity.PaidAccessExpiresAt != nil {
				assert.Equal(t, tt.identity.PaidAccessExpiresAt.Unix(), claims.PaidAccessExpiresAt().Unix())
			} else {
				assert.Nil(t, claims.PaidAccessExpiresAt())
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: 123, Role: domain.RoleAdmin}, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: 123, Role: domain.RoleUser}, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed With Other Secret",
			setup: func() string {
				token, _ := NewJWTService("another-secret-another-secret-xx").GenerateJWT(Identity{UserID: 123, Role: domain.RoleUser}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Unknown Role",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: 123, Role: "owner"}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
