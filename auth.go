package twitterapi

import (
	"encoding/base64"
	"fmt"
)

// AuthMode selects which Authorization header construction a request
// uses. Exactly one mode is active at a time; switching modes does not
// clear the credentials of the other modes.
type AuthMode int

const (
	// AuthBasic sends base64(applicationKey:applicationSecret). Basic
	// mode always derives from the application credentials, so it is
	// the zero value and needs no Authorize call.
	AuthBasic AuthMode = iota
	// AuthBearer sends a bearer token.
	AuthBearer
	// AuthOAuth signs each request with OAuth 1.0a HMAC-SHA1.
	AuthOAuth
)

func (m AuthMode) String() string {
	switch m {
	case AuthBasic:
		return "basic"
	case AuthBearer:
		return "bearer"
	case AuthOAuth:
		return "oauth"
	}
	return fmt.Sprintf("AuthMode(%d)", int(m))
}

// Token is an access token (token credential) which allows a consumer
// to access protected resources on behalf of a user.
type Token struct {
	Token       string
	TokenSecret string
}

// NewToken returns a new Token with the given token and token secret.
func NewToken(token, tokenSecret string) *Token {
	return &Token{
		Token:       token,
		TokenSecret: tokenSecret,
	}
}

// Authorize stores the credential for the given mode and makes it the
// active mode. For AuthBearer only token is used. For AuthOAuth both
// token and secret are stored; a missing secret is rejected with
// ErrMissingSecret since the signing key cannot be computed without
// it. For AuthBasic token and secret are ignored; basic mode reuses
// the application credentials.
func (c *Client) Authorize(mode AuthMode, token, secret string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch mode {
	case AuthBearer:
		c.bearer = token
	case AuthOAuth:
		if secret == "" {
			return ErrMissingSecret
		}
		c.token = NewToken(token, secret)
	case AuthBasic:
	default:
		return fmt.Errorf("twitterapi: unknown auth mode %v", mode)
	}
	c.mode = mode
	return nil
}

// SetMode changes the active mode without touching stored credentials.
func (c *Client) SetMode(mode AuthMode) {
	c.mu.Lock()
	c.mode = mode
	c.mu.Unlock()
}

func basicAuthValue(key, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
}

func bearerAuthValue(token string) string {
	return "Bearer " + token
}
