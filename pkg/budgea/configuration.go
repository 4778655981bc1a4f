package budgea

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBasePath       = "https://demo.biapi.pro/2.0"
	DefaultTokenPrefix    = "Bearer"
	DefaultUserAgent      = "budgea-go/2.0"
	DefaultMaxConcurrency = 8
)

// Configuration holds the settings shared by every call of an APIClient.
type Configuration struct {
	BasePath      string
	UserAgent     string
	DefaultHeader map[string]string
	// HTTPClient is copied and its transport instrumented; nil uses http.DefaultClient.
	HTTPClient *http.Client

	// Token is the user or manage token sent in the Authorization header of
	// authenticated operations, prefixed with TokenPrefix.
	Token       string
	TokenPrefix string

	Logger logrus.FieldLogger
	// MaxConcurrency bounds the number of Async calls running at once.
	MaxConcurrency int64
}

// NewConfiguration returns a Configuration with the package defaults.
func NewConfiguration() *Configuration {
	return &Configuration{
		BasePath:       DefaultBasePath,
		UserAgent:      DefaultUserAgent,
		DefaultHeader:  map[string]string{},
		TokenPrefix:    DefaultTokenPrefix,
		MaxConcurrency: DefaultMaxConcurrency,
	}
}

// AddDefaultHeader sets a header sent with every request.
func (c *Configuration) AddDefaultHeader(key, value string) {
	if c.DefaultHeader == nil {
		c.DefaultHeader = map[string]string{}
	}
	c.DefaultHeader[key] = value
}

// authorization returns the Authorization header value, or "" when no token is set.
func (c *Configuration) authorization() string {
	if c.Token == "" {
		return ""
	}
	if c.TokenPrefix == "" {
		return c.Token
	}
	return c.TokenPrefix + " " + c.Token
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
