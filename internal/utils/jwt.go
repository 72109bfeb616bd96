package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thingfulapp/thingful-server/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given account.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username the token was issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - user_id:         private claim with the account identifier
//
// Returns an error if issuer, userName, or signKey is empty or
// tokenDuration is zero, or if signing fails.
func GenerateJWTToken(issuer, userName string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userName == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userName,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, UserID: userID, SignedString: tokenString, UserName: userName}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// claims.
//
// Validation covers the HMAC-SHA256 signature against tokenSignKey, the
// expiration claim, and the issuer claim against tokenIssuer. The raw
// jwt library error is returned unwrapped so that callers can classify the
// failure kind with [errors.Is] against jwt.ErrTokenMalformed,
// jwt.ErrTokenSignatureInvalid, and jwt.ErrTokenExpired.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, err
	}

	userName, err := claims.GetUserName()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, UserID: claims.UserID, SignedString: tokenString, UserName: userName}, nil
}
