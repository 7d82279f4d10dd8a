package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobboard-backend/internal/domain"
)

// maxBodyBytes caps the jobs resource read into memory.
const maxBodyBytes = 8 << 20

// HTTPSource fetches the jobs resource with a single GET.
type HTTPSource struct {
	URL     string
	client  *http.Client
	decoder *decoder
}

// NewHTTPSource builds a source for url. A zero timeout leaves the request
// bounded only by ctx.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:     url,
		client:  &http.Client{Timeout: timeout},
		decoder: newDecoder(),
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrSourceTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %s", domain.ErrSourceStatus, s.URL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSourceTransport, err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrSourceDecode, maxBodyBytes)
	}

	return s.decoder.decode(body)
}
