package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"moviemaker/internal/history/app"
	"moviemaker/modules/kit/logx"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const zstdExt = ".zst"

type FeedSourceOptions struct {
	URLTemplate string // 参数：world id, era
	File        string // 本地 feed，设置后不走网络
	ArchiveDir  string // 非空时把下载的 feed 以 zstd 压缩另存一份
}

// FeedSource 取 feed 文本：本地文件优先（.zst 结尾按 zstd 解压），否则按 URL 模板下载。
type FeedSource struct {
	fs      afero.Fs
	fetcher Fetcher
	opts    FeedSourceOptions
	log     logx.Logger
}

func NewFeedSource(fsys afero.Fs, fetcher Fetcher, opts FeedSourceOptions, log logx.Logger) *FeedSource {
	if log == nil {
		log = logx.Nop()
	}
	return &FeedSource{fs: fsys, fetcher: fetcher, opts: opts, log: log}
}

func (s *FeedSource) FetchFeed(ctx context.Context, worldID int, era string) (string, error) {
	if s.opts.File != "" {
		return s.readLocal(s.opts.File)
	}

	url := fmt.Sprintf(s.opts.URLTemplate, worldID, era)
	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	s.log.WithContext(ctx).Info("feed downloaded", zap.String("url", url), zap.Int("bytes", len(data)))

	if s.opts.ArchiveDir != "" {
		p := path.Join(s.opts.ArchiveDir, fmt.Sprintf("%d_%s.csv%s", worldID, era, zstdExt))
		if err := s.archive(p, data); err != nil {
			logx.ReportDegradedWithLoggerContext(ctx, s.log, "archive_feed", "write_failed",
				zap.String("path", p), zap.Error(err))
		}
	}
	return string(data), nil
}

func (s *FeedSource) readLocal(p string) (string, error) {
	f, err := s.fs.Open(p)
	if err != nil {
		return "", app.ErrAssetUnavailable.WithData("path", p).WithCause(err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(p, zstdExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return "", app.ErrAssetDecode.WithData("path", p).WithCause(err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", app.ErrAssetDecode.WithData("path", p).WithCause(err)
	}
	return string(data), nil
}

func (s *FeedSource) archive(p string, data []byte) error {
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, p, buf.Bytes(), 0o644)
}
