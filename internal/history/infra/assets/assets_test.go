package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"moviemaker/internal/history/app"
	"moviemaker/internal/history/domain"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	im := image.NewRGBA(image.Rect(0, 0, 4, 4))
	im.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, im); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// newServer 按路径返回内容，未登记的路径 404，/broken 返回 500。
func newServer(t *testing.T, files map[string][]byte, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		data, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher_状态码映射(t *testing.T) {
	srv := newServer(t, map[string][]byte{"/ok": []byte("hello")}, nil)
	f := NewHTTPFetcher(time.Second)
	ctx := context.Background()

	data, err := f.Fetch(ctx, srv.URL+"/ok")
	if err != nil || string(data) != "hello" {
		t.Fatalf("期望取回内容, data=%q err=%v", data, err)
	}
	if _, err := f.Fetch(ctx, srv.URL+"/missing"); !errors.Is(err, app.ErrAssetNotFound) {
		t.Fatalf("期望 404 -> ErrAssetNotFound, got=%v", err)
	}
	if _, err := f.Fetch(ctx, srv.URL+"/broken"); !errors.Is(err, app.ErrAssetUnavailable) {
		t.Fatalf("期望 500 -> ErrAssetUnavailable, got=%v", err)
	}
}

func TestDiskCache_读穿并落盘(t *testing.T) {
	var hits int32
	srv := newServer(t, map[string][]byte{"/img/a.jpg": []byte("A")}, &hits)
	fsys := afero.NewMemMapFs()
	c := NewDiskCache(fsys, "maps", srv.URL+"/img/", NewHTTPFetcher(time.Second), nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		data, err := c.Get(ctx, "a.jpg")
		if err != nil || string(data) != "A" {
			t.Fatalf("第 %d 次读取失败: data=%q err=%v", i, data, err)
		}
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("期望只下载一次, got=%d", hits)
	}
	if ok, _ := afero.Exists(fsys, "maps/a.jpg"); !ok {
		t.Fatalf("期望缓存文件已写入")
	}
}

func TestDiskCache_本地已有不下载(t *testing.T) {
	var hits int32
	srv := newServer(t, nil, &hits)
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "kdbanners/kingdom7.jpg", []byte("B"), 0o644)
	c := NewDiskCache(fsys, "kdbanners", srv.URL+"/", NewHTTPFetcher(time.Second), nil)

	data, err := c.Get(context.Background(), "kingdom7.jpg")
	if err != nil || string(data) != "B" {
		t.Fatalf("期望读到本地缓存, data=%q err=%v", data, err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("期望没有网络请求, got=%d", hits)
	}
}

func TestMapSource(t *testing.T) {
	srv := newServer(t, map[string][]byte{
		"/vuQ.jpg":    pngBytes(t), // 按内容嗅探格式，扩展名不影响解码
		"/karta3.jpg": []byte("not an image"),
	}, nil)
	src := NewMapSource(NewDiskCache(afero.NewMemMapFs(), "maps", srv.URL+"/", NewHTTPFetcher(time.Second), nil))
	ctx := context.Background()

	img, err := src.FetchMap(ctx, 1)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Fatalf("期望 4px 宽, got=%d", img.Bounds().Dx())
	}
	if _, err := src.FetchMap(ctx, 2); !errors.Is(err, app.ErrAssetDecode) {
		t.Fatalf("期望解码失败, got=%v", err)
	}
	if _, err := src.FetchMap(ctx, 11); !errors.Is(err, domain.ErrUnknownMap) {
		t.Fatalf("期望未知地图, got=%v", err)
	}
}

func TestBannerSource_无旗帜返回NotFound(t *testing.T) {
	srv := newServer(t, map[string][]byte{"/kingdom5.jpg": pngBytes(t)}, nil)
	src := NewBannerSource(NewDiskCache(afero.NewMemMapFs(), "kdbanners", srv.URL+"/", NewHTTPFetcher(time.Second), nil))
	ctx := context.Background()

	if _, err := src.FetchBanner(ctx, 5); err != nil {
		t.Fatalf("err=%v", err)
	}
	if _, err := src.FetchBanner(ctx, 6); !errors.Is(err, app.ErrAssetNotFound) {
		t.Fatalf("期望 ErrAssetNotFound, got=%v", err)
	}
}

func TestFeedSource_下载并归档(t *testing.T) {
	const body = "world=1 era=last map=1 size=1250\n1,10,10,1,1,1,1,city\n"
	srv := newServer(t, map[string][]byte{"/history/1_last.csv": []byte(body)}, nil)
	fsys := afero.NewMemMapFs()
	src := NewFeedSource(fsys, NewHTTPFetcher(time.Second), FeedSourceOptions{
		URLTemplate: srv.URL + "/history/%d_%s.csv",
		ArchiveDir:  "feeds",
	}, nil)

	text, err := src.FetchFeed(context.Background(), 1, "last")
	if err != nil || text != body {
		t.Fatalf("期望取回 feed, text=%q err=%v", text, err)
	}

	f, err := fsys.Open("feeds/1_last.csv.zst")
	if err != nil {
		t.Fatalf("期望写入归档: %v", err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd: %v", err)
	}
	defer dec.Close()
	var out strings.Builder
	if _, err := dec.WriteTo(&out); err != nil {
		t.Fatalf("解压失败: %v", err)
	}
	if out.String() != body {
		t.Fatalf("期望归档内容一致, got=%q", out.String())
	}
}

func TestFeedSource_本地文件(t *testing.T) {
	const body = "world=2 era=1 map=2 size=2000\n"
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "plain.csv", []byte(body), 0o644)

	var buf bytes.Buffer
	enc, _ := zstd.NewWriter(&buf)
	_, _ = enc.Write([]byte(body))
	_ = enc.Close()
	_ = afero.WriteFile(fsys, "packed.csv.zst", buf.Bytes(), 0o644)

	for _, p := range []string{"plain.csv", "packed.csv.zst"} {
		src := NewFeedSource(fsys, nil, FeedSourceOptions{File: p}, nil)
		text, err := src.FetchFeed(context.Background(), 0, "")
		if err != nil || text != body {
			t.Fatalf("%s: 期望读到本地 feed, text=%q err=%v", p, text, err)
		}
	}

	src := NewFeedSource(fsys, nil, FeedSourceOptions{File: "missing.csv"}, nil)
	if _, err := src.FetchFeed(context.Background(), 0, ""); !errors.Is(err, app.ErrAssetUnavailable) {
		t.Fatalf("期望 ErrAssetUnavailable, got=%v", err)
	}
}

func TestWorldIDByName(t *testing.T) {
	cases := map[string]int{
		"Fantasia":     1,
		"good vs evil": 13,
		"MOGROX":       12,
		"7":            7,
	}
	for name, want := range cases {
		got, err := WorldIDByName(name)
		if err != nil || got != want {
			t.Fatalf("%q: 期望 %d, got=%d err=%v", name, want, got, err)
		}
	}
	for _, bad := range []string{"atlantis", "", "-3"} {
		if _, err := WorldIDByName(bad); !errors.Is(err, domain.ErrUnknownWorld) {
			t.Fatalf("%q: 期望 ErrUnknownWorld, got=%v", bad, err)
		}
	}
}
