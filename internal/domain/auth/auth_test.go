package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{
		UserID:     "user-1",
		EmployeeID: "emp-1",
		Role:       RoleEmployee,
		Email:      "alice@example.com",
	}

	token, err := GenerateToken("secret", claims, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, "user-1", parsed.UserID)
	require.Equal(t, "emp-1", parsed.EmployeeID)
	require.Equal(t, RoleEmployee, parsed.Role)
	require.Equal(t, "alice@example.com", parsed.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "user-1", Role: RoleHR}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	require.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "user-1", Role: RoleHR}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cure-pass", hash)

	require.NoError(t, CheckPassword(hash, "s3cure-pass"))
	require.Error(t, CheckPassword(hash, "wrong-pass"))
}
