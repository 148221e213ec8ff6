package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"moviemaker/internal/history/app"
	"moviemaker/internal/history/domain"
)

var mapFiles = map[int]string{
	1:  "vuQ.jpg",
	2:  "karta3.jpg",
	3:  "desert.jpg",
	4:  "karta6.jpg",
	5:  "mogrox.jpg",
	6:  "manxmap_HQ.jpg",
	7:  "shatteredworlds_HQ.jpg",
	8:  "bigsnowmap_HQ.jpg",
	9:  "arkan_HQ.png",
	10: "rivers_HQ.jpg",
	13: "island.jpg",
}

// MapFile 地图 id 对应的贴图文件名。
func MapFile(mapID int) (string, error) {
	name, ok := mapFiles[mapID]
	if !ok {
		return "", domain.ErrUnknownMap.WithData("map", mapID)
	}
	return name, nil
}

func BannerFile(territoryID int) string {
	return fmt.Sprintf("kingdom%d.jpg", territoryID)
}

type MapSource struct {
	cache *DiskCache
}

func NewMapSource(cache *DiskCache) *MapSource {
	return &MapSource{cache: cache}
}

func (s *MapSource) FetchMap(ctx context.Context, mapID int) (image.Image, error) {
	name, err := MapFile(mapID)
	if err != nil {
		return nil, err
	}
	data, err := s.cache.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return decode(name, data)
}

// BannerSource 旗帜图；领地没有旗帜时 cache 返回 ErrAssetNotFound，原样上抛。
type BannerSource struct {
	cache *DiskCache
}

func NewBannerSource(cache *DiskCache) *BannerSource {
	return &BannerSource{cache: cache}
}

func (s *BannerSource) FetchBanner(ctx context.Context, territoryID int) (image.Image, error) {
	name := BannerFile(territoryID)
	data, err := s.cache.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return decode(name, data)
}

func decode(name string, data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, app.ErrAssetDecode.WithData("file", name).WithCause(err)
	}
	return img, nil
}
