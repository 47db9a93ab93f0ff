package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/YusifQasim/caffe-backend/helpers"

	"github.com/dgrijalva/jwt-go"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Authentication(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func TestAuthenticationMissingToken(t *testing.T) {
	c := qt.New(t)
	router := newProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestAuthenticationInvalidToken(t *testing.T) {
	c := qt.New(t)
	router := newProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "garbage")
	router.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusForbidden)
}

func TestAuthenticationExpiredToken(t *testing.T) {
	c := qt.New(t)
	router := newProtectedRouter()

	claims := &helpers.SignedDetails{
		Username: "admin",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	c.Assert(err, qt.IsNil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusForbidden)
}

func TestAuthenticationValidToken(t *testing.T) {
	c := qt.New(t)
	router := newProtectedRouter()

	token, err := helpers.GenerateToken("admin", testSecret)
	c.Assert(err, qt.IsNil)

	for _, header := range []string{token, "Bearer " + token} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		c.Assert(w.Code, qt.Equals, http.StatusOK)
		c.Assert(w.Body.String(), qt.Contains, "admin")
	}
}
