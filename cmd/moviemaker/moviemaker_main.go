package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviemaker/internal/history/app"
	"moviemaker/internal/history/infra/assets"
	"moviemaker/internal/history/infra/palette"
	"moviemaker/internal/history/infra/sink"
	"moviemaker/internal/render/canvas"
	"moviemaker/internal/shared/appconfig"
	"moviemaker/internal/shared/logs"
	"moviemaker/modules/kit/logx"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	conf, err := appconfig.Load(args.conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	args.apply(&conf)

	if err := logs.Init("moviemaker", conf.Log); err != nil {
		panic(err)
	}
	logs.Info("conf", zap.Any("conf", conf))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	log := logx.NewZapLogger(logs.Logger())

	code := 0
	if err := run(ctx, conf, args, log); err != nil {
		logx.ReportSysErrorWithLoggerContext(ctx, log, logx.NewSysLog("moviemaker", err))
		code = 1
	}
	stop()
	logs.Sync()
	os.Exit(code)
}

func run(ctx context.Context, conf appconfig.Config, args cliArgs, log *logx.ZapLogger) error {
	worldID, err := assets.WorldIDByName(args.world)
	if err != nil {
		return err
	}
	gap, err := app.ParseGapPolicy(conf.Feed.GapPolicy)
	if err != nil {
		return err
	}

	fsys := afero.NewOsFs()
	preset, err := palette.Load(fsys, conf.Palette.File)
	if err != nil {
		return err
	}

	fetcher := assets.NewHTTPFetcher(time.Duration(conf.Feed.TimeoutS) * time.Second)
	feeds := assets.NewFeedSource(fsys, fetcher, assets.FeedSourceOptions{
		URLTemplate: conf.Feed.URLTemplate,
		File:        conf.Feed.File,
		ArchiveDir:  conf.Feed.ArchiveDir,
	}, log.Named("feed"))
	assetLog := log.Named("assets")
	maps := assets.NewMapSource(assets.NewDiskCache(fsys, conf.Assets.MapCacheDir, conf.Assets.MapBaseURL, fetcher, assetLog))
	banners := assets.NewBannerSource(assets.NewDiskCache(fsys, conf.Assets.BannerCacheDir, conf.Assets.BannerBaseURL, fetcher, assetLog))
	frames := sink.NewPNGSink(fsys, conf.Render.OutputDir)

	svc := app.NewMovieService(feeds, maps, banners, frames, preset, log, app.MovieOptions{
		Render: canvas.Options{
			CanvasSize:           conf.Render.CanvasSize,
			ShowBanners:          conf.Render.ShowTerritoryBanners,
			ShowTerritoryBorders: conf.Render.ShowTerritoryBorders,
			ShowRulerBorders:     conf.Render.ShowRulerBorders,
			BannerAlpha:          conf.Render.BannerAlpha,
		},
		Workers:      conf.Render.Workers,
		FetchWorkers: conf.Assets.FetchWorkers,
		SingleFrame:  conf.Render.SingleFrame,
		GapPolicy:    gap,
		Seed:         conf.Render.Seed,
		BannerWidth:  conf.Render.BannerWidth,
		BannerHeight: conf.Render.BannerHeight,
	})

	res, err := svc.Run(ctx, app.MovieRequest{WorldID: worldID, Era: args.era})
	if err != nil {
		return err
	}
	logs.Info("frames written",
		zap.String("run_id", res.RunID),
		zap.String("dir", conf.Render.OutputDir),
		zap.Int("frames", res.Frames),
		zap.Duration("elapsed", res.Elapsed),
	)
	return nil
}
