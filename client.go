// Package twitterapi is a client for the Twitter REST API supporting
// Basic, Bearer, and three-legged OAuth 1.0a authentication. Requests
// are signed according to RFC 5849 using HMAC-SHA1.
package twitterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/cjrasmussen/twitterapi/internal"
)

const (
	// DefaultAPIBaseURL is the primary API host.
	DefaultAPIBaseURL = "https://api.twitter.com/"
	// DefaultUploadBaseURL is the host media upload calls route to.
	DefaultUploadBaseURL = "https://upload.twitter.com/"
	// AuthorizeURL is the page a user visits to authorize a request
	// token during the three-legged flow.
	AuthorizeURL = "https://api.twitter.com/oauth/authorize"

	requestTokenPath = "oauth/request_token"
	accessTokenPath  = "oauth/access_token"

	contentTypeHeader = "Content-Type"
	expectHeader      = "Expect"
	formContentType   = "application/x-www-form-urlencoded"
)

// Client makes authenticated requests to the API. The exported fields
// may be set before the first call; the zero values are the production
// defaults. A Client is safe for concurrent use: every call builds its
// own signing context and the mutable credential state is guarded.
type Client struct {
	// APIBaseURL overrides DefaultAPIBaseURL.
	APIBaseURL string
	// UploadBaseURL overrides DefaultUploadBaseURL.
	UploadBaseURL string
	// HTTPClient overrides the client used to execute requests. If
	// nil, the client carried by the request context (see HTTPClient
	// context key) or http.DefaultClient is used.
	HTTPClient *http.Client
	// Noncer overrides the nonce source used for OAuth signing.
	Noncer Noncer

	consumerKey    string
	consumerSecret string

	mu     sync.Mutex
	token  *Token
	bearer string
	mode   AuthMode

	now func() time.Time
}

// NewClient returns a Client holding the application key and secret.
// Both are required; the client starts in Basic mode.
func NewClient(consumerKey, consumerSecret string) (*Client, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
	}, nil
}

// Request describes a single API call.
type Request struct {
	// Method is the HTTP method; it defaults to GET and is forced to
	// POST for multipart requests.
	Method string
	// Path is the endpoint path relative to the base URL. Leading and
	// trailing slashes and whitespace are trimmed. A path containing
	// "upload" anywhere routes to the upload host.
	Path string
	// Args holds the query or body parameters for the call.
	Args Params
	// Body, when non-nil, is sent verbatim and takes precedence over
	// Args. Set a Content-Type through Header.
	Body []byte
	// Multipart sends Args as a multipart form. Only the OAuth
	// protocol parameters are signed for multipart calls.
	Multipart bool
	// Header holds extra request headers.
	Header http.Header
}

// Response is the interpreted result of an API call.
type Response struct {
	// StatusCode is always populated. When both JSON and Form are nil
	// the endpoint returned an empty body and communicated its result
	// through the status code alone.
	StatusCode int
	// JSON holds the decoded body of a regular endpoint.
	JSON interface{}
	// Form holds the decoded body of an OAuth token endpoint, which
	// responds with a URL-encoded form rather than JSON.
	Form url.Values
}

// Get issues a GET request with args encoded into the query string.
func (c *Client) Get(ctx context.Context, path string, args Params) (*Response, error) {
	return c.Request(ctx, Request{Method: http.MethodGet, Path: path, Args: args})
}

// Post issues a POST request with args sent as a URL-encoded form.
func (c *Client) Post(ctx context.Context, path string, args Params) (*Response, error) {
	return c.Request(ctx, Request{Method: http.MethodPost, Path: path, Args: args})
}

// Request executes a single synchronous API call using the active auth
// mode and interprets the response.
func (c *Client) Request(ctx context.Context, req Request) (*Response, error) {
	return c.request(ctx, req, callOpts{})
}

// callOpts carries per-call overrides used by the token flows.
type callOpts struct {
	// oauth holds extra OAuth protocol parameters to sign and send,
	// such as oauth_callback or oauth_verifier.
	oauth map[string]string
	// token overrides the stored user token for this call.
	token *Token
	// forceOAuth signs the call with OAuth regardless of the active
	// mode.
	forceOAuth bool
}

func (c *Client) request(ctx context.Context, req Request, opts callOpts) (*Response, error) {
	path := strings.Trim(req.Path, " \t\r\n/")

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	if req.Multipart {
		method = http.MethodPost
	}

	base := c.apiBaseURL()
	if strings.Contains(path, "upload") {
		base = c.uploadBaseURL()
	}
	rawurl := base + path

	tokenEndpoint := path == requestTokenPath

	c.mu.Lock()
	if tokenEndpoint {
		// Initiating the handshake must not carry a prior user
		// identity; drop any stored token so oauth_token is absent.
		c.token = nil
	}
	mode := c.mode
	token := c.token
	bearer := c.bearer
	c.mu.Unlock()

	if opts.forceOAuth {
		mode = AuthOAuth
	}
	if opts.token != nil {
		token = opts.token
	}

	finalURL := rawurl
	if method == http.MethodGet && len(req.Args) > 0 {
		finalURL = rawurl + "?" + encodeQuery(req.Args)
	}

	var bodyReader io.Reader
	var contentType string
	switch {
	case req.Body != nil:
		bodyReader = bytes.NewReader(req.Body)
	case req.Multipart:
		body, mpType, err := multipartBody(req.Args)
		if err != nil {
			return nil, err
		}
		bodyReader = body
		contentType = mpType
	case method != http.MethodGet && len(req.Args) > 0:
		bodyReader = strings.NewReader(encodeQuery(req.Args))
		contentType = formContentType
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, finalURL, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "twitterapi: build request")
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if contentType != "" && httpReq.Header.Get(contentTypeHeader) == "" {
		httpReq.Header.Set(contentTypeHeader, contentType)
	}

	switch mode {
	case AuthBasic:
		httpReq.Header.Set(authorizationHeader, basicAuthValue(c.consumerKey, c.consumerSecret))
	case AuthBearer:
		httpReq.Header.Set(authorizationHeader, bearerAuthValue(bearer))
	case AuthOAuth:
		oauthParams := protocolParams(c.consumerKey, c.Noncer, c.now, token)
		for key, value := range opts.oauth {
			oauthParams[key] = value
		}
		tokenSecret := ""
		if token != nil {
			tokenSecret = token.TokenSecret
		}
		// The signed URL is the pre-query-append base; args are signed
		// through the parameter set instead.
		_, header, err := SignRequest(method, rawurl, oauthParams, req.Args, req.Multipart, c.consumerSecret, tokenSecret)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set(authorizationHeader, header)
		// defeats automatic "Expect: 100-continue" on large bodies
		httpReq.Header.Set(expectHeader, "")
	}

	res, err := c.httpClient(ctx).Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp := &Response{StatusCode: res.StatusCode}
	switch {
	case tokenEndpoint || path == accessTokenPath:
		if len(body) == 0 {
			return resp, nil
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, &ParseError{StatusCode: res.StatusCode, Err: err}
		}
		resp.Form = values
	case len(body) == 0:
		// status-only result, nothing to decode
	default:
		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, &ParseError{StatusCode: res.StatusCode, Err: err}
		}
		resp.JSON = decoded
	}
	return resp, nil
}

func (c *Client) apiBaseURL() string {
	return normalizeBaseURL(c.APIBaseURL, DefaultAPIBaseURL)
}

func (c *Client) uploadBaseURL() string {
	return normalizeBaseURL(c.UploadBaseURL, DefaultUploadBaseURL)
}

func normalizeBaseURL(base, fallback string) string {
	if base == "" {
		base = fallback
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

func (c *Client) httpClient(ctx context.Context) *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return internal.ContextClient(ctx)
}

// protocolParams returns the common OAuth protocol parameters for one
// call, excluding oauth_signature. A fresh nonce and timestamp are
// generated every time.
func protocolParams(consumerKey string, noncer Noncer, now func() time.Time, token *Token) map[string]string {
	if noncer == nil {
		noncer = Base64Noncer{}
	}
	if now == nil {
		now = time.Now
	}
	params := map[string]string{
		oauthConsumerKeyParam:     consumerKey,
		oauthNonceParam:           noncer.Nonce(),
		oauthSignatureMethodParam: signatureMethodHMACSHA1,
		oauthTimestampParam:       strconv.FormatInt(now().Unix(), 10),
		oauthVersionParam:         oauthVersion1,
	}
	if token != nil && token.Token != "" {
		params[oauthTokenParam] = token.Token
	}
	return params
}

func encodeQuery(args Params) string {
	values := url.Values{}
	for key, value := range args {
		values.Set(key, value.Render())
	}
	return values.Encode()
}

func multipartBody(args Params) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, key := range args.sortedKeys() {
		value := args[key]
		if value.kind == kindBytes {
			part, err := w.CreateFormFile(key, key)
			if err != nil {
				return nil, "", errors.Wrap(err, "twitterapi: build multipart body")
			}
			if _, err := part.Write(value.raw.([]byte)); err != nil {
				return nil, "", errors.Wrap(err, "twitterapi: build multipart body")
			}
			continue
		}
		if err := w.WriteField(key, value.Render()); err != nil {
			return nil, "", errors.Wrap(err, "twitterapi: build multipart body")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "twitterapi: build multipart body")
	}
	return &buf, w.FormDataContentType(), nil
}
