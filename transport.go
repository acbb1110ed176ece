package twitterapi

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/context"

	"github.com/pkg/errors"

	"github.com/cjrasmussen/twitterapi/internal"
)

// NoContext is the default context to supply when not using a custom
// context.Context.
//
// Deprecated: Use context.Background() or context.TODO() instead.
var NoContext = context.TODO()

// HTTPClient is the context key to use with context's WithValue
// function to associate an *http.Client value with a context.
var HTTPClient internal.ContextKey

// Transport is an http.RoundTripper which signs requests with OAuth
// 1.0a before handing them to a base RoundTripper. It exists for
// endpoints the dispatcher does not model, such as streaming; most
// callers should use Client instead.
type Transport struct {
	// Base is the base RoundTripper used to make HTTP requests. If
	// nil, http.DefaultTransport is used.
	Base http.RoundTripper

	consumerKey    string
	consumerSecret string
	token          *Token

	noncer Noncer
	now    func() time.Time
}

// NewHTTPClient returns an *http.Client which signs every request with
// the given credentials. A custom base transport may be supplied
// through an *http.Client associated with ctx under the HTTPClient
// key.
func NewHTTPClient(ctx context.Context, consumerKey, consumerSecret string, token *Token) *http.Client {
	return &http.Client{
		Transport: &Transport{
			Base:           internal.ContextClient(ctx).Transport,
			consumerKey:    consumerKey,
			consumerSecret: consumerSecret,
			token:          token,
		},
	}
}

// RoundTrip authorizes the request with a signed OAuth1 Authorization
// header. Query parameters and a URL-encoded form body, if present,
// are collected into the signature.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	args, err := formArgs(req)
	if err != nil {
		return nil, err
	}
	oauthParams := protocolParams(t.consumerKey, t.noncer, t.now, t.token)
	tokenSecret := ""
	if t.token != nil {
		tokenSecret = t.token.TokenSecret
	}
	_, header, err := SignRequest(req.Method, req.URL.String(), oauthParams, args, false, t.consumerSecret, tokenSecret)
	if err != nil {
		return nil, err
	}
	req2 := cloneRequest(req)
	req2.Header.Set(authorizationHeader, header)
	return t.base().RoundTrip(req2)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// formArgs drains a URL-encoded form body into Params for signing and
// reinitializes the body so it can still be sent.
func formArgs(req *http.Request) (Params, error) {
	if req.Body == nil || req.Header.Get(contentTypeHeader) != formContentType {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "twitterapi: read form body")
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	values, err := url.ParseQuery(string(b))
	if err != nil {
		return nil, errors.Wrap(err, "twitterapi: parse form body")
	}
	args := Params{}
	for key, vs := range values {
		// duplicate form keys are not supported
		args[key] = String(vs[0])
	}
	return args, nil
}

// cloneRequest returns a clone of the given *http.Request with a
// shallow copy of struct fields and a deep copy of the Header map.
func cloneRequest(req *http.Request) *http.Request {
	r2 := new(http.Request)
	*r2 = *req
	r2.Header = make(http.Header, len(req.Header))
	for k, s := range req.Header {
		r2.Header[k] = append([]string(nil), s...)
	}
	return r2
}
