package feed

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
)

// NewSource picks the source implementation for location: http(s) URLs are
// fetched over the network, anything else is read from disk.
func NewSource(location string, timeout time.Duration) (domain.JobSource, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("feed: empty jobs source location")
	}

	u, err := url.Parse(location)
	if err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return NewHTTPSource(location, timeout), nil
		case "file":
			// file:data.json keeps a relative path in Opaque
			path := u.Path
			if path == "" {
				path = u.Opaque
			}
			if path == "" {
				return nil, fmt.Errorf("feed: file URL %q has no path", location)
			}
			return NewFileSource(path), nil
		}
	}
	return NewFileSource(location), nil
}
