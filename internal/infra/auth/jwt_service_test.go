package auth

import (
	"testing"
	"time"

	"fitsync/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func createTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	svc := createTestJWTService(t)
	userID := uuid.New()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":  userID.String(),
		"tier": "platinum",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "platinum", claims.Tier)
}

func TestValidateToken_MissingTier(t *testing.T) {
	svc := createTestJWTService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Empty(t, claims.Tier)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := createTestJWTService(t)

	tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := createTestJWTService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNonHMACAlgorithm(t *testing.T) {
	svc := createTestJWTService(t)

	// alg=none tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_InvalidSubject(t *testing.T) {
	svc := createTestJWTService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := createTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
