// Package main provisions operator credentials: a bcrypt hash of the
// operator API key for the X-API-Key scheme and a signed JWT for the Bearer
// scheme. Output goes to stdout for the deployer to place in the
// environment.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"paygate/internal/config"
	"paygate/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	operator := os.Getenv("OPERATOR_ACCOUNT")
	apiKey := os.Getenv("OPERATOR_API_KEY")
	jwtSecret := os.Getenv("JWT_SECRET")
	if operator == "" || apiKey == "" || jwtSecret == "" {
		log.Fatal("OPERATOR_ACCOUNT, OPERATOR_API_KEY, and JWT_SECRET must be set in environment")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash api key:", err)
	}

	now := time.Now()
	claims := models.PrincipalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "paygate-seed",
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
		Account: operator,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		log.Fatal("failed to sign operator token:", err)
	}

	fmt.Printf("OPERATOR_API_KEY_HASH=%s\n", string(hash))
	fmt.Printf("operator bearer token (24h): %s\n", token)
}
