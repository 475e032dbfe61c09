// Web server of go-foxstarter: counter and theme API plus the embedded front-end
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/go-while/go-foxstarter/internal/config"
	"github.com/go-while/go-foxstarter/internal/web"
)

var (
	// command-line flags
	webhost     string
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	debug       bool
	pprofAddr   string
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&webhost, "webhost", "", "Web server listen host (default: all interfaces)")
	flag.IntVar(&webport, "webport", 0, "Web server port (default: $PORT or 3000)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&debug, "debug", false, "Enable access log and gin debug mode")
	flag.StringVar(&pprofAddr, "pprof", "", "Serve pprof on this address, e.g. :51111 (default: off)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = logger.WithLogger(ctx, logger.New(logger.DefaultConfig))
	log := logger.Get(ctx)

	if err := run(ctx, log); err != nil {
		log.Error("[WEB]: Web server failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
	log.Info("[WEB]: Web server stopped")
}

func run(ctx context.Context, log *zap.Logger) error {
	mainConfig := config.NewDefaultConfig()
	webConfig := mainConfig.Web

	if err := webConfig.ApplyEnv(nil); err != nil {
		return err
	}

	// Override config with command-line flags if provided
	if webhost != "" {
		webConfig.ListenHost = webhost
	}
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Info("[WEB]: Overriding listen port with command-line flag", zap.Int("port", webport))
	}
	if webssl {
		webConfig.SSL = true
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
	}
	webConfig.Debug = debug
	webConfig.PprofAddr = pprofAddr

	if err := webConfig.Validate(); err != nil {
		return err
	}

	if webConfig.PprofAddr != "" {
		Prof := prof.NewProf()
		go Prof.PprofWeb(webConfig.PprofAddr)
		log.Info("[WEB]: pprof enabled", zap.String("addr", webConfig.PprofAddr))
	}

	log.Info("[WEB]: Starting go-foxstarter web server",
		zap.String("version", mainConfig.AppVersion),
		zap.String("addr", webConfig.Addr()),
		zap.Bool("ssl", webConfig.SSL))

	server := web.NewServer(log, webConfig)
	err := server.Start(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("[WEB]: Received shutdown signal, server shut down gracefully")
		return nil
	}
	return err
}
