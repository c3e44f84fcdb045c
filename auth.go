package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"biosite/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// errInvalidCredentials covers both unknown email and wrong password so the
// login response cannot leak which accounts exist.
var errInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// Authenticate looks up the account by exact email and verifies the password
// against the stored bcrypt hash.
func Authenticate(email, password string) (models.Account, error) {
	email = strings.TrimSpace(email)
	var acct models.Account
	if err := db.Where("email = ?", email).First(&acct).Error; err != nil {
		return models.Account{}, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return models.Account{}, errInvalidCredentials
	}
	return acct, nil
}

// issueToken returns a self-contained bearer token for the account. No
// session state is kept server-side; expiry is the only invalidation.
func issueToken(acct models.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    acct.ID,
		"email": acct.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondError(c, http.StatusUnauthorized, "Authorization header missing")
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(c, http.StatusUnauthorized, "Invalid authorization format")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			respondError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respondError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		c.Set("email", email)
		if id, ok := claims["id"].(float64); ok {
			c.Set("accountID", uint(id))
		}
		c.Next()
	}
}
