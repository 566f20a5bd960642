package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	issued, err := svc.GenerateToken(7, "a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.JTI)
	assert.Equal(t, fixed.Add(24*time.Hour), issued.ExpiresAt)

	// The fixed clock is in the past, so skip time validation here.
	parsed, _, err := new(jwt.Parser).ParseUnverified(issued.Token, &Claims{})
	require.NoError(t, err)
	claims := parsed.Claims.(*Claims)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, issued.JTI, claims.ID)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	issued, err := svc.GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.JTI, claims.ID)

	_, err = NewJWTService("other-secret", time.Hour).ValidateToken(issued.Token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredAndMissingJTI(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)

	noJTI := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err = noJTI.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_UniqueJTI(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	first, err := svc.GenerateToken(1, "a@b.com")
	require.NoError(t, err)
	second, err := svc.GenerateToken(1, "a@b.com")
	require.NoError(t, err)
	assert.NotEqual(t, first.JTI, second.JTI)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}
