// Package docs builds links to the hosted API documentation of AWS SDK
// client crates.
package docs

import (
	"net/url"

	"github.com/335g/clidoc/pkg/errors"
)

// DefaultBaseURL is the docs.rs host used when no mirror is configured.
const DefaultBaseURL = "https://docs.rs"

// URL returns the address of the Client struct page for the service with
// canonical name name at the given version ("latest" or "X.Y.Z"):
//
//	<base>/aws-sdk-<name>/<version>/aws_sdk_<name>/client/struct.Client.html
//
// An empty base selects DefaultBaseURL. Base may carry a path prefix.
func URL(base, name, version string) (string, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	if err := errors.ValidateURL(base); err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "service name cannot be empty")
	}
	if version == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "version cannot be empty")
	}

	u, err := url.JoinPath(base, "aws-sdk-"+name, version, "aws_sdk_"+name, "client", "struct.Client.html")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidURL, err, "join docs URL")
	}
	return u, nil
}
