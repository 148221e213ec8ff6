package assets

import (
	"context"
	"errors"
	"io/fs"
	"path"

	"moviemaker/internal/history/app"
	"moviemaker/modules/kit/logx"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DiskCache 读穿缓存：本地有就直接读，没有就下载后落盘。
type DiskCache struct {
	fs      afero.Fs
	dir     string
	baseURL string
	fetcher Fetcher
	log     logx.Logger
}

func NewDiskCache(fsys afero.Fs, dir, baseURL string, fetcher Fetcher, log logx.Logger) *DiskCache {
	if log == nil {
		log = logx.Nop()
	}
	return &DiskCache{fs: fsys, dir: dir, baseURL: baseURL, fetcher: fetcher, log: log}
}

func (c *DiskCache) Get(ctx context.Context, name string) ([]byte, error) {
	p := path.Join(c.dir, name)
	data, err := afero.ReadFile(c.fs, p)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, app.ErrAssetUnavailable.WithData("path", p).WithCause(err)
	}

	data, err = c.fetcher.Fetch(ctx, c.baseURL+name)
	if err != nil {
		return nil, err
	}

	// 缓存写失败不影响本次使用
	if err := c.store(p, data); err != nil {
		logx.ReportDegradedWithLoggerContext(ctx, c.log, "cache_store", "write_failed",
			zap.String("path", p), zap.Error(err))
		return data, nil
	}
	c.log.WithContext(ctx).Info("asset cached", zap.String("path", p), zap.Int("bytes", len(data)))
	return data, nil
}

func (c *DiskCache) store(p string, data []byte) error {
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(c.fs, p, data, 0o644)
}
