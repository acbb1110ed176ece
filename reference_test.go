package twitterapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// staticNoncer returns a fixed nonce so signatures can be compared
// against published reference values.
type staticNoncer string

func (n staticNoncer) Nonce() string { return string(n) }

func staticClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestTwitterRequestTokenSignature(t *testing.T) {
	// example from https://dev.twitter.com/web/sign-in/implementing
	oauthParams := map[string]string{
		oauthConsumerKeyParam:     "cChZNFj6T5R0TigYB9yd1w",
		oauthNonceParam:           "ea9ec8429b68d6b77cd5600adbbb0456",
		oauthSignatureMethodParam: signatureMethodHMACSHA1,
		oauthTimestampParam:       "1318467427",
		oauthVersionParam:         oauthVersion1,
		oauthCallbackParam:        "http://localhost/sign-in-with-twitter/",
	}
	signature, header, err := SignRequest(
		"POST",
		"https://api.twitter.com/oauth/request_token",
		oauthParams, nil, false,
		"L8qq9PZyRg6ieKGEKhZolGC0vJWLw8iEJ88DRdyOg", "",
	)
	assert.Nil(t, err)
	assert.Equal(t, "F1Li3tvehgcraF8DMJ7OyxO4w9Y=", signature)

	params := parseOAuthParamsOrFail(t, header)
	assert.Equal(t, "F1Li3tvehgcraF8DMJ7OyxO4w9Y%3D", params[oauthSignatureParam])
	assert.Equal(t, "http%3A%2F%2Flocalhost%2Fsign-in-with-twitter%2F", params[oauthCallbackParam])
	assert.Equal(t, "cChZNFj6T5R0TigYB9yd1w", params[oauthConsumerKeyParam])
	assert.Equal(t, "ea9ec8429b68d6b77cd5600adbbb0456", params[oauthNonceParam])
	assert.Equal(t, "1318467427", params[oauthTimestampParam])
	assert.Equal(t, oauthVersion1, params[oauthVersionParam])
	assert.Equal(t, signatureMethodHMACSHA1, params[oauthSignatureMethodParam])
}

func TestTwitterAccessTokenSignature(t *testing.T) {
	// example from https://dev.twitter.com/web/sign-in/implementing
	oauthParams := map[string]string{
		oauthConsumerKeyParam:     "cChZNFj6T5R0TigYB9yd1w",
		oauthNonceParam:           "a9900fe68e2573b27a37f10fbad6a755",
		oauthSignatureMethodParam: signatureMethodHMACSHA1,
		oauthTimestampParam:       "1318467427",
		oauthVersionParam:         oauthVersion1,
		oauthTokenParam:           "NPcudxy0yU5T3tBzho7iCotZ3cnetKwcTIRlX0iwRl0",
		oauthVerifierParam:        "uw7NjWHT6OJ1MpJOXsHfNxoAhPKpgI8BlYDhxEjIBY",
	}
	signature, _, err := SignRequest(
		"POST",
		"https://api.twitter.com/oauth/access_token",
		oauthParams, nil, false,
		"L8qq9PZyRg6ieKGEKhZolGC0vJWLw8iEJ88DRdyOg",
		"veNRnAWe6inFuo8o2u8SLLZLjolYDmDP7SzL0YfYI",
	)
	assert.Nil(t, err)
	assert.Equal(t, "39cipBtIOHEEnybAR4sATQTpl2I=", signature)
}

func TestTwitterStatusUpdateBaseStringAndSignature(t *testing.T) {
	// example from https://dev.twitter.com/oauth/overview/creating-signatures
	oauthParams := map[string]string{
		oauthConsumerKeyParam:     "xvz1evFS4wEEPTGEFPHBog",
		oauthNonceParam:           "kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg",
		oauthSignatureMethodParam: signatureMethodHMACSHA1,
		oauthTimestampParam:       "1318622958",
		oauthTokenParam:           "370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb",
		oauthVersionParam:         oauthVersion1,
	}
	args := Params{"status": String("Hello Ladies + Gentlemen, a signed OAuth request!")}
	rawurl := "https://api.twitter.com/1/statuses/update.json?include_entities=true"

	base, err := SignatureBase("POST", rawurl, oauthParams, args, false)
	assert.Nil(t, err)
	assert.Equal(t,
		"POST&https%3A%2F%2Fapi.twitter.com%2F1%2Fstatuses%2Fupdate.json&"+
			"include_entities%3Dtrue%26"+
			"oauth_consumer_key%3Dxvz1evFS4wEEPTGEFPHBog%26"+
			"oauth_nonce%3DkYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg%26"+
			"oauth_signature_method%3DHMAC-SHA1%26"+
			"oauth_timestamp%3D1318622958%26"+
			"oauth_token%3D370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb%26"+
			"oauth_version%3D1.0%26"+
			"status%3DHello%2520Ladies%2520%252B%2520Gentlemen%252C%2520a%2520signed%2520OAuth%2520request%2521",
		base)

	signature, _, err := SignRequest("POST", rawurl, oauthParams, args, false,
		"kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw",
		"LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE",
	)
	assert.Nil(t, err)
	assert.Equal(t, "tnnArxj06cWHq44gCs1OSKk/jLY=", signature)
}
