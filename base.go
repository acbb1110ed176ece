package twitterapi

import (
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// SignatureBase combines the uppercase request method, the percent
// encoded base string URI, and the normalized request parameters into
// the OAuth 1.0a signature base string according to RFC 5849 3.4.1.
//
// Any query string present in rawurl is parsed into parameters and the
// signed URI has it stripped. For multipart requests only the OAuth
// protocol parameters are signed: the body is not a plain form, so
// args and query parameters stay out of the base string. Otherwise
// OAuth parameters, args, and query parameters are merged, with later
// sources winning on key collision. Non-scalar args are excluded from
// signing.
func SignatureBase(method, rawurl string, oauthParams map[string]string, args Params, multipart bool) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", errors.Wrap(err, "twitterapi: parse request url")
	}
	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", errors.Wrap(err, "twitterapi: parse query string")
	}
	u.RawQuery = ""
	baseURL := u.String()

	params := make(map[string]string, len(oauthParams)+len(args)+len(query))
	for key, value := range oauthParams {
		params[key] = value
	}
	if !multipart {
		for key, value := range args {
			if value.scalar() {
				params[key] = value.Render()
			}
		}
		for key, values := range query {
			// duplicate query keys are not supported
			params[key] = values[0]
		}
	}

	baseParts := []string{
		strings.ToUpper(method),
		PercentEncode(baseURL),
		PercentEncode(normalizedParameterString(params)),
	}
	return strings.Join(baseParts, "&"), nil
}

// normalizedParameterString sorts parameters by key, percent encodes
// each key and value, and joins the pairs into a parameter string as
// defined in RFC 5849 3.4.1.3.2 (e.g. foo=bar&q=gopher).
func normalizedParameterString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = PercentEncode(key) + "=" + PercentEncode(params[key])
	}
	return strings.Join(pairs, "&")
}
