// Command mission generates details for a single mission without starting
// the HTTP server. It prints the same JSON document GET /mission returns.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zeromicro/go-zero/core/logx"

	"mission-api/internal/config"
	"mission-api/internal/logic"
	"mission-api/internal/svc"
	"mission-api/internal/types"
)

func fatalf(format string, args ...interface{}) {
	logx.Errorf(format, args...)
	os.Exit(1)
}

func main() {
	var (
		configPath  = flag.String("f", "etc/mission.yaml", "the config file")
		description = flag.String("description", "", "mission description; percent-encoding is decoded")
		points      = flag.String("points", "", "total points the criteria must add up to")
		pretty      = flag.Bool("pretty", true, "indent the JSON output")
	)
	flag.Parse()
	logx.MustSetup(logx.LogConf{Mode: "console", Level: "error"})
	logx.DisableStat()

	if strings.TrimSpace(*description) == "" && flag.NArg() > 0 {
		*description = strings.Join(flag.Args(), " ")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	svcCtx, err := svc.NewServiceContext(*cfg)
	if err != nil {
		fatalf("init service: %v", err)
	}
	defer func() {
		_ = svcCtx.Close()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	resp, err := logic.NewMissionLogic(ctx, svcCtx).Mission(&types.MissionRequest{
		Description: *description,
		TotalPoints: *points,
	})
	if errors.Is(err, logic.ErrMissingParams) {
		fatalf("%s", types.MsgMissingParams)
	}
	if err != nil {
		fatalf("%v", err)
	}
	if err := writeJSON(os.Stdout, resp, *pretty); err != nil {
		fatalf("write output: %v", err)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
