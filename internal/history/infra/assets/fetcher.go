package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"moviemaker/internal/history/app"
)

// Fetcher 按 URL 取回原始字节。
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch 只接受 200；404 转成 ErrAssetNotFound，调用方可据此降级。
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, app.ErrInvalidOption.WithData("url", url).WithCause(err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, app.ErrAssetUnavailable.WithData("url", url).WithCause(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, app.ErrAssetNotFound.WithData("url", url)
	case resp.StatusCode != http.StatusOK:
		return nil, app.ErrAssetUnavailable.
			WithData("url", url).
			WithData("status", resp.StatusCode).
			WithCause(fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, app.ErrAssetUnavailable.WithData("url", url).WithCause(err)
	}
	return body, nil
}
