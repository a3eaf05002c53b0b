package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/ranking-mk2/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() models.Session {
	return models.Session{
		UserID: 42,
		Email:  "admin@example.com",
		Name:   "Admin",
		Role:   "admin",
	}
}

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("ranking-mk2", testSession(), 24*time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.Session.UserID)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: "secret"},
		{name: "zero duration", issuer: "ranking-mk2", duration: 0, signKey: "secret"},
		{name: "empty sign key", issuer: "ranking-mk2", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, testSession(), tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("ranking-mk2", testSession(), 24*time.Hour, "secret")
	require.NoError(t, err)

	session, err := ValidateAndParseSessionToken(token.SignedString, "secret", "ranking-mk2")
	require.NoError(t, err)

	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, "admin@example.com", session.Email)
	assert.Equal(t, "Admin", session.Name)
	assert.Equal(t, "admin", session.Role)
}

func TestValidateAndParseSessionToken_WrongKey(t *testing.T) {
	token, err := GenerateSessionToken("ranking-mk2", testSession(), 24*time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token.SignedString, "other-secret", "ranking-mk2")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	token, err := GenerateSessionToken("someone-else", testSession(), 24*time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token.SignedString, "secret", "ranking-mk2")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("ranking-mk2", testSession(), -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token.SignedString, "secret", "ranking-mk2")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not-a-token", "secret", "ranking-mk2")
	assert.Error(t, err)
}
