package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/motion-sandbox/config"
	"github.com/lixenwraith/motion-sandbox/constant"
	"github.com/lixenwraith/motion-sandbox/engine"
	"github.com/lixenwraith/motion-sandbox/logging"
)

const demoName = "bouncing-ball"

var (
	configFlag = flag.String("config", "", "YAML config file overriding defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+constant.LogDir+"/"+logging.FileName(demoName))
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run has a single teardown path: every acquired resource is released by the deferred Close
func run() (code int) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(*debugFlag, constant.LogDir, demoName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, err := engine.New(engine.Options{
		Name:       demoName,
		Config:     cfg,
		Logger:     logger,
		FrameDelay: cfg.Ball.FrameDelay,
		Mute:       *muteFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer ctx.Close()

	// Panic Recovery: restore the terminal before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", zap.Any("recovered", r))
			ctx.Close()
			fmt.Fprintf(os.Stderr, "\n%s crashed: %v\n", demoName, r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	ctx.Run(sigCtx, newBallGame(cfg))
	return 0
}
