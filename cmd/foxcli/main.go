// Terminal front-end of go-foxstarter
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/go-while/go-foxstarter/internal/client"
	"github.com/go-while/go-foxstarter/internal/config"
	"github.com/go-while/go-foxstarter/internal/prefs"
	"github.com/go-while/go-foxstarter/internal/tui"
	"github.com/go-while/go-foxstarter/internal/view"
)

var (
	serverURL string
	prefsDir  string
	lineMode  bool
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion
	mainConfig := config.NewDefaultConfig()

	flag.StringVar(&serverURL, "server", mainConfig.Client.ServerURL, "URL of the go-foxstarter web server")
	flag.StringVar(&prefsDir, "prefs", mainConfig.Client.PrefsDir, "Directory of the local preference database")
	flag.BoolVar(&lineMode, "lines", false, "Read commands line by line from stdin even on a terminal")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = logger.WithLogger(ctx, logger.New(logger.DefaultConfig))

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "foxcli: %s\n", view.Describe(err))
		logger.Get(ctx).Debug("foxcli failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := logger.Get(ctx)

	store, err := prefs.OpenSQLiteStore(ctx, log, prefsDir, serverURL)
	if err != nil {
		return err
	}
	defer store.Close()

	c := client.New(serverURL, nil)
	v := view.New(c, store, view.WithLogger(log))
	if err := v.Load(ctx); err != nil {
		return err
	}

	if lineMode || !term.IsTerminal(int(os.Stdin.Fd())) {
		return tui.RunLines(ctx, v, os.Stdin, os.Stdout)
	}
	return tui.Run(ctx, v)
}
