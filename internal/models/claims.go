package models

import "github.com/golang-jwt/jwt/v5"

// PrincipalClaims is the JWT payload the caller layer issues after
// authenticating an identity. The gateway core never sees the token; it only
// receives Account as the opaque caller principal.
type PrincipalClaims struct {
	jwt.RegisteredClaims
	Account string `json:"account"`
}
