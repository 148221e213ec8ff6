package app

import (
	"context"
	"image"

	"moviemaker/modules/kit/logx"
)

type Logger = logx.Logger

// FeedSource 取回某个世界某个纪元的原始 feed 文本。
type FeedSource interface {
	FetchFeed(ctx context.Context, worldID int, era string) (string, error)
}

// MapSource 按地图 id 取回已解码的地图贴图。
type MapSource interface {
	FetchMap(ctx context.Context, mapID int) (image.Image, error)
}

// BannerSource 按领地 id 取回已解码的旗帜图；不存在时返回 ErrAssetNotFound。
type BannerSource interface {
	FetchBanner(ctx context.Context, territoryID int) (image.Image, error)
}

// FrameSink 接收渲染好的帧，按帧序号命名落盘。
type FrameSink interface {
	Reset(ctx context.Context) error
	WriteFrame(ctx context.Context, index int, img image.Image) error
}
