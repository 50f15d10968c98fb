// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/stsysd/eventgrapher/api"
	"github.com/stsysd/eventgrapher/config"
	"github.com/stsysd/eventgrapher/parser"
	"github.com/stsysd/eventgrapher/stats"
	"github.com/stsysd/eventgrapher/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd はコマンドツリーを構築します。サブコマンド省略時はserveとして動作します。
func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "eventgrapher",
		Short:         "Visualize a year of timestamped events as a dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().String("input", "input/input.txt", "path to the event log")
	root.PersistentFlags().Int("year", 0, "year to chart (0 = year of the first event)")
	root.PersistentFlags().String("timezone", "Local", "timezone used to interpret timestamps")
	// serveのフラグはルートでも受け付ける
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newRenderCmd(), newSummaryCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			// サーバーインスタンスの作成
			server := api.NewServer(a.summary, a.events, a.cfg)

			// サーバーの起動
			return server.Run(":" + a.cfg.Port)
		},
	}
	cmd.Flags().String("port", "8080", "HTTP server port")
	return cmd
}

// app は読み込み済みの設定・イベント・統計をまとめたものです。
type app struct {
	cfg     *config.Config
	events  *store.Collection
	summary *stats.Summary
}

// loadApp は設定を読み込み、入力ファイルを解析して統計を計算します。
func loadApp(cmd *cobra.Command) (*app, error) {
	// 設定の読み込み
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// 入力ファイルの解析
	events, err := store.Load(cfg.InputFile, parser.New(loc))
	if err != nil {
		return nil, err
	}
	log.Printf("Parsed %d events from %s (%d lines skipped)", events.Len(), cfg.InputFile, events.Skipped())

	year, err := stats.ResolveYear(events, cfg.Year, time.Now())
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		events:  events,
		summary: stats.Compute(events, year),
	}, nil
}
