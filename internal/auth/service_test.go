package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService("admin", string(hash), testSecret)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t, "hunter2")

	tokenString, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejections(t *testing.T) {
	svc := newTestService(t, "hunter2")

	_, err := svc.Login("admin", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("root", "hunter2")
	assert.Error(t, err)

	_, err = NewService("admin", "", testSecret).Login("admin", "hunter2")
	assert.Error(t, err, "login disabled when no hash is configured")
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := AdminMiddleware(testSecret)(next)

	call := func(authHeader string) *httptest.ResponseRecorder {
		r := httptest.NewRequest("GET", "/api/waitlist/lookup", nil)
		if authHeader != "" {
			r.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, r)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("Basic abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("Bearer not.a.token").Code)
	})

	t.Run("valid token without admin role", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user"})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, call("Bearer "+signed).Code)
	})

	t.Run("admin token passes", func(t *testing.T) {
		svc := newTestService(t, "hunter2")
		signed, err := svc.Login("admin", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, call("Bearer "+signed).Code)
	})
}
