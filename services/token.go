package services

import (
	"context"
	"time"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/config"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/dgrijalva/jwt-go"
	"google.golang.org/api/idtoken"
)

const tokenLifetime = 7 * 24 * time.Hour

// GenerateToken signs a JWT carrying the user's id and role
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": user.ID,
			"role":   user.Role,
		},
		"exp": time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.GetEnv("JWT_SECRET")))
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Could not sign token", err)
	}
	return signed, nil
}

// ParseToken verifies a JWT and returns the caller's id and role
func ParseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return []byte(config.GetEnv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid token claims", nil)
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Missing user info in token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	role, okRole := userInfo["role"].(string)
	if !okID || !okRole {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Missing user id or role in token", nil)
	}

	return uint(userID), role, nil
}

// VerifyGoogleIDToken validates a Google sign-in credential and returns the
// subject, email and name claims.
func VerifyGoogleIDToken(ctx context.Context, credential string) (sub, email, name string, err error) {
	payload, err := idtoken.Validate(ctx, credential, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", "", "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid Google credential", err)
	}

	sub, _ = payload.Claims["sub"].(string)
	email, _ = payload.Claims["email"].(string)
	name, _ = payload.Claims["name"].(string)
	if sub == "" || email == "" {
		return "", "", "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Google credential missing claims", nil)
	}
	return sub, email, name, nil
}
