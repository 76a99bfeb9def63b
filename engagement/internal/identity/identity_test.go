package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ugcengagement/engagement/pkg/model"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestResolveHeader(t *testing.T) {
	r := NewResolver("")
	assert.False(t, r.RequiresToken())

	got, err := r.Resolve("", " user-1 ")
	require.NoError(t, err)
	assert.Equal(t, model.UserID("user-1"), got)

	_, err = r.Resolve("Bearer whatever", "")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestResolveToken(t *testing.T) {
	r := NewResolver(secret)
	valid := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "user-1", "iat": time.Now().Unix()})
	legacy := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"username": "user-2"})
	foreign := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "user-1"})
	expired := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()})
	anonymous := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"iat": time.Now().Unix()})

	tests := []struct {
		name          string
		authorization string
		userID        string
		want          model.UserID
		wantErr       error
	}{
		{name: "subject", authorization: "Bearer " + valid, want: "user-1"},
		{name: "matching header", authorization: "Bearer " + valid, userID: "user-1", want: "user-1"},
		{name: "username claim", authorization: "Bearer " + legacy, want: "user-2"},
		{name: "no token", userID: "user-1", wantErr: ErrMissing},
		{name: "not bearer", authorization: "Basic abc", wantErr: ErrMissing},
		{name: "wrong secret", authorization: "Bearer " + foreign, wantErr: ErrInvalidToken},
		{name: "expired", authorization: "Bearer " + expired, wantErr: ErrInvalidToken},
		{name: "no subject", authorization: "Bearer " + anonymous, wantErr: ErrInvalidToken},
		{name: "mismatching header", authorization: "Bearer " + valid, userID: "user-9", wantErr: ErrInvalidToken},
		{name: "garbage", authorization: "Bearer not.a.token", wantErr: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.authorization, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
