package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/iceandfire/internal/client/models"
	"github.com/dmitrijs2005/iceandfire/internal/netx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	http    *http.Client
	timeout time.Duration
}

// NewHTTPClient returns an HTTPClient whose transport is instrumented with
// OpenTelemetry. A zero timeout leaves requests bounded only by ctx and the
// transport defaults.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		timeout: timeout,
	}
}

func (c *HTTPClient) FetchCharacters(ctx context.Context, urls []string) ([]models.Character, error) {
	result := make([]models.Character, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			ch, err := c.fetchOne(gctx, url)
			if err != nil {
				return err
			}
			result[i] = ch
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) fetchOne(ctx context.Context, url string) (models.Character, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var ch models.Character
	if err := netx.GetJSON(ctx, c.http, url, &ch); err != nil {
		return models.Character{}, c.mapError(url, err)
	}
	return ch, nil
}

func (c *HTTPClient) mapError(url string, err error) error {
	if errors.Is(err, netx.ErrUnexpectedStatus) || errors.Is(err, netx.ErrDecode) {
		return fmt.Errorf("%w: %s: %w", ErrBadResponse, url, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, url, err)
}
