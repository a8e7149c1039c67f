// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mission-api/internal/cli"
	"mission-api/internal/config"
	"mission-api/internal/handler"
	"mission-api/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/mission.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)

	server := rest.MustNewServer(cfg.RestConf, handler.RunOptions(*cfg)...)
	defer server.Stop()

	ctx, err := svc.NewServiceContext(*cfg)
	logx.Must(err)
	defer ctx.Close()

	cli.LogConfigSummary(cfg)
	cli.LogServiceSummary(ctx)
	handler.RegisterHandlers(server, ctx)

	// SIGHUP rereads Prompt.Template without a restart.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	reloadCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctx.WatchPromptReload(reloadCtx, hup)

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
