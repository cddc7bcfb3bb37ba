package contentful

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Hosts of the two Contentful read APIs.
const (
	DeliveryURL = "https://cdn.contentful.com"
	PreviewURL  = "https://preview.contentful.com"
)

var (
	// ErrConfig reports missing or invalid client configuration. It is not
	// recoverable at runtime.
	ErrConfig = errors.New("contentful: invalid configuration")
	// ErrPreviewUnavailable is returned when draft content is requested but
	// no preview token was configured.
	ErrPreviewUnavailable = fmt.Errorf("%w: preview token not set", ErrConfig)
)

// Config holds credentials and transport settings for the read clients.
type Config struct {
	SpaceID      string
	Environment  string // default "master"
	AccessToken  string // Content Delivery API token (required)
	PreviewToken string // Content Preview API token (optional)

	DeliveryURL string // default DeliveryURL
	PreviewURL  string // default PreviewURL

	HTTPClient *http.Client  // default: retrying client built by NewHTTPClient
	RetryMax   int           // retries after the first attempt (default 2)
	Timeout    time.Duration // per-request timeout (default 10s)

	Cache Cache // optional response cache
}

func (c *Config) setDefaults() {
	if c.Environment == "" {
		c.Environment = "master"
	}
	if c.DeliveryURL == "" {
		c.DeliveryURL = DeliveryURL
	}
	if c.PreviewURL == "" {
		c.PreviewURL = PreviewURL
	}
	if c.RetryMax == 0 {
		c.RetryMax = defaultRetryMax
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the required credentials are present.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.SpaceID, validation.Required.Error("space id is required")),
		validation.Field(&c.AccessToken, validation.Required.Error("access token is required")),
		validation.Field(&c.DeliveryURL, is.URL),
		validation.Field(&c.PreviewURL, is.URL),
		validation.Field(&c.RetryMax, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}
