package twitterapi

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// envCredentials mirrors the environment variables read by
// ClientFromEnv, e.g. TWITTER_CONSUMER_KEY for prefix "twitter".
type envCredentials struct {
	ConsumerKey    string `split_words:"true" required:"true"`
	ConsumerSecret string `split_words:"true" required:"true"`
	AccessToken    string `split_words:"true"`
	AccessSecret   string `split_words:"true"`
	BearerToken    string `split_words:"true"`
}

// ClientFromEnv builds a Client from environment variables under the
// given prefix. CONSUMER_KEY and CONSUMER_SECRET are required. When
// ACCESS_TOKEN and ACCESS_SECRET are both set the client starts in
// OAuth mode; otherwise, when BEARER_TOKEN is set, in Bearer mode;
// otherwise in Basic mode.
func ClientFromEnv(prefix string) (*Client, error) {
	var env envCredentials
	if err := envconfig.Process(prefix, &env); err != nil {
		return nil, errors.Wrap(err, "twitterapi: read credentials from environment")
	}
	client, err := NewClient(env.ConsumerKey, env.ConsumerSecret)
	if err != nil {
		return nil, err
	}
	switch {
	case env.AccessToken != "" && env.AccessSecret != "":
		if err := client.Authorize(AuthOAuth, env.AccessToken, env.AccessSecret); err != nil {
			return nil, err
		}
	case env.BearerToken != "":
		if err := client.Authorize(AuthBearer, env.BearerToken, ""); err != nil {
			return nil, err
		}
	}
	return client, nil
}
