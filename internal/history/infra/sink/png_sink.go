package sink

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"path"

	"moviemaker/internal/history/app"

	"github.com/spf13/afero"
)

// PNGSink 把帧写成 {dir}/{index:04d}.png；文件名只由帧序号决定，与完成顺序无关。
type PNGSink struct {
	fs  afero.Fs
	dir string
	enc png.Encoder
}

func NewPNGSink(fsys afero.Fs, dir string) *PNGSink {
	return &PNGSink{fs: fsys, dir: dir, enc: png.Encoder{CompressionLevel: png.BestSpeed}}
}

func FrameName(index int) string {
	return fmt.Sprintf("%04d.png", index)
}

// Reset 确保输出目录存在，并删掉上一次运行留下的文件。
func (s *PNGSink) Reset(ctx context.Context) error {
	_ = ctx
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return app.ErrOutputFailed.WithData("dir", s.dir).WithCause(err)
	}
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return app.ErrOutputFailed.WithData("dir", s.dir).WithCause(err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := path.Join(s.dir, e.Name())
		if err := s.fs.Remove(p); err != nil {
			return app.ErrOutputFailed.WithData("path", p).WithCause(err)
		}
	}
	return nil
}

func (s *PNGSink) WriteFrame(ctx context.Context, index int, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := path.Join(s.dir, FrameName(index))
	f, err := s.fs.Create(p)
	if err != nil {
		return app.ErrOutputFailed.WithData("path", p).WithCause(err)
	}
	if err := s.enc.Encode(f, img); err != nil {
		_ = f.Close()
		return app.ErrOutputFailed.WithData("path", p).WithCause(err)
	}
	if err := f.Close(); err != nil {
		return app.ErrOutputFailed.WithData("path", p).WithCause(err)
	}
	return nil
}
