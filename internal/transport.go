package internal

import (
	"net/http"

	"golang.org/x/net/context"
)

// HTTPClient is the context key to use with context's WithValue
// function to associate an *http.Client value with a context.
var HTTPClient ContextKey

// ContextKey is just an empty struct. It exists so HTTPClient can be
// an immutable public variable with a unique type. It's immutable
// because nobody else can create a ContextKey, being unexported.
type ContextKey struct{}

// ContextClient returns the *http.Client carried by the context under
// the HTTPClient key, or http.DefaultClient.
func ContextClient(ctx context.Context) *http.Client {
	if ctx != nil {
		if hc, ok := ctx.Value(HTTPClient).(*http.Client); ok {
			return hc
		}
	}
	return http.DefaultClient
}
