package twitterapi

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
	"strings"
)

const (
	authorizationHeader = "Authorization"
	authorizationPrefix = "OAuth " // trailing space is intentional

	oauthConsumerKeyParam     = "oauth_consumer_key"
	oauthNonceParam           = "oauth_nonce"
	oauthSignatureParam       = "oauth_signature"
	oauthSignatureMethodParam = "oauth_signature_method"
	oauthTimestampParam       = "oauth_timestamp"
	oauthTokenParam           = "oauth_token"
	oauthTokenSecretParam     = "oauth_token_secret"
	oauthVersionParam         = "oauth_version"
	oauthCallbackParam        = "oauth_callback"
	oauthVerifierParam        = "oauth_verifier"

	signatureMethodHMACSHA1 = "HMAC-SHA1"
	oauthVersion1           = "1.0"
)

// SigningKey concatenates the percent encoded consumer secret and
// token secret per RFC 5849 3.4.2. The trailing "&" is kept even when
// the token secret is empty; two-legged requests are signed with the
// consumer secret alone.
func SigningKey(consumerSecret, tokenSecret string) string {
	return PercentEncode(consumerSecret) + "&" + PercentEncode(tokenSecret)
}

// HMACSHA1 calculates the HMAC-SHA1 digest of the message with the
// given key and returns the base64 encoded digest bytes.
func HMACSHA1(key, message string) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignRequest builds the signature base string for the call, signs it,
// and assembles the Authorization header value. The oauthParams map is
// not modified; the returned header carries the oauth_signature pair
// alongside the supplied parameters. The header value is returned bare
// (no header name) and should be set as the Authorization header.
func SignRequest(method, rawurl string, oauthParams map[string]string, args Params, multipart bool, consumerSecret, tokenSecret string) (signature, header string, err error) {
	base, err := SignatureBase(method, rawurl, oauthParams, args, multipart)
	if err != nil {
		return "", "", err
	}
	signature = HMACSHA1(SigningKey(consumerSecret, tokenSecret), base)

	signed := make(map[string]string, len(oauthParams)+1)
	for key, value := range oauthParams {
		signed[key] = value
	}
	signed[oauthSignatureParam] = signature
	return signature, AuthorizationHeaderValue(signed), nil
}

// AuthorizationHeaderValue formats OAuth parameters according to RFC
// 5849 3.5.1. Parameters are sorted by key, rendered as key="value"
// with percent encoded values, joined with ", ", and prefixed with
// "OAuth ". The given parameters should include oauth_signature.
func AuthorizationHeaderValue(oauthParams map[string]string) string {
	keys := make([]string, 0, len(oauthParams))
	for key := range oauthParams {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = PercentEncode(key) + `="` + PercentEncode(oauthParams[key]) + `"`
	}
	return authorizationPrefix + strings.Join(pairs, ", ")
}
