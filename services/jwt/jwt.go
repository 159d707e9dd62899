package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

const (
	AccessTokenValidity  = time.Hour * 24
	RefreshTokenValidity = time.Hour * 24 * 7
)

// GenerateTokenPair returns a signed access and refresh token for the user.
func GenerateTokenPair(email, secret string, isAdmin bool, userID uint, role string) (string, string, error) {
	accessClaims := jwt.MapClaims{
		"user_email": email,
		"user_id":    userID,
		"role":       role,
		"is_admin":   isAdmin,
		"exp":        time.Now().Add(AccessTokenValidity).Unix(),
	}
	accessToken, err := GenerateToken(jwt.SigningMethodHS256, accessClaims, &secret)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"user_email": email,
		"user_id":    userID,
		"exp":        time.Now().Add(RefreshTokenValidity).Unix(),
	}
	refreshToken, err := GenerateToken(jwt.SigningMethodHS256, refreshClaims, &secret)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func GenerateToken(signMethod *jwt.SigningMethodHMAC, claims jwt.MapClaims, secret *string) (string, error) {
	token := jwt.NewWithClaims(signMethod, claims)
	tokenString, err := token.SignedString([]byte(*secret))
	if err != nil {
		return "", errors.Wrap(err, "could not sign token")
	}
	return tokenString, nil
}

// ValidateAndGetClaims verifies the token signature and expiry and returns
// the embedded claims.
func ValidateAndGetClaims(tokenString, secret string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
