package twitterapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const oauthCallbackConfirmedParam = "oauth_callback_confirmed"

// RequestToken obtains a request token and secret (temporary
// credential) by POSTing to the request token endpoint with
// oauth_callback in the signed header. Any stored user token is
// cleared first; the handshake must start without a prior identity.
// When a callback URL is given the response is validated to confirm
// it. See RFC 5849 2.1.
func (c *Client) RequestToken(ctx context.Context, callbackURL string) (requestToken, requestSecret string, err error) {
	opts := callOpts{forceOAuth: true}
	if callbackURL != "" {
		opts.oauth = map[string]string{oauthCallbackParam: callbackURL}
	}
	resp, err := c.request(ctx, Request{Method: http.MethodPost, Path: requestTokenPath}, opts)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", errors.Errorf("twitterapi: server returned status %d", resp.StatusCode)
	}
	requestToken = resp.Form.Get(oauthTokenParam)
	requestSecret = resp.Form.Get(oauthTokenSecretParam)
	if requestToken == "" || requestSecret == "" {
		return "", "", errors.New("twitterapi: response missing oauth_token or oauth_token_secret")
	}
	if callbackURL != "" && resp.Form.Get(oauthCallbackConfirmedParam) != "true" {
		return "", "", errors.New("twitterapi: oauth_callback_confirmed was not true")
	}
	return requestToken, requestSecret, nil
}

// AuthorizationURL returns the URL of the authorization page that asks
// the user to grant the application access for the given request
// token. See RFC 5849 2.2.
func AuthorizationURL(requestToken string) (*url.URL, error) {
	authorizationURL, err := url.Parse(AuthorizeURL)
	if err != nil {
		return nil, errors.Wrap(err, "twitterapi: parse authorize url")
	}
	values := authorizationURL.Query()
	values.Add(oauthTokenParam, requestToken)
	authorizationURL.RawQuery = values.Encode()
	return authorizationURL, nil
}

// ParseAuthorizationCallback parses the callback request the provider
// issues after the user grants access, returning the request token
// from earlier in the flow and the verifier string to pass to
// AccessToken. See RFC 5849 2.2.
func ParseAuthorizationCallback(req *http.Request) (requestToken, verifier string, err error) {
	if err := req.ParseForm(); err != nil {
		return "", "", errors.Wrap(err, "twitterapi: parse authorization callback")
	}
	requestToken = req.Form.Get(oauthTokenParam)
	verifier = req.Form.Get(oauthVerifierParam)
	if requestToken == "" || verifier == "" {
		return "", "", errors.New("twitterapi: callback missing oauth_token or oauth_verifier")
	}
	return requestToken, verifier, nil
}

// AccessToken exchanges an authorized request token and verifier for
// an access token and secret (token credential). The call is signed
// with the request token pair, not the stored user token. On success
// the caller typically passes the pair to Authorize. See RFC 5849 2.3.
func (c *Client) AccessToken(ctx context.Context, requestToken, requestSecret, verifier string) (accessToken, accessSecret string, err error) {
	opts := callOpts{
		forceOAuth: true,
		token:      NewToken(requestToken, requestSecret),
		oauth:      map[string]string{oauthVerifierParam: verifier},
	}
	resp, err := c.request(ctx, Request{Method: http.MethodPost, Path: accessTokenPath}, opts)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", errors.Errorf("twitterapi: server returned status %d", resp.StatusCode)
	}
	accessToken = resp.Form.Get(oauthTokenParam)
	accessSecret = resp.Form.Get(oauthTokenSecretParam)
	if accessToken == "" || accessSecret == "" {
		return "", "", errors.New("twitterapi: response missing oauth_token or oauth_token_secret")
	}
	return accessToken, accessSecret, nil
}
