package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/pointerhook/internal/app"
	"github.com/frudas24/pointerhook/internal/bridge"
	"github.com/frudas24/pointerhook/internal/config"
	"github.com/frudas24/pointerhook/internal/inputhook"
	"github.com/frudas24/pointerhook/internal/rtc"
	"github.com/frudas24/pointerhook/internal/session"
	"github.com/frudas24/pointerhook/internal/wininput"
)

const hookStopTimeout = 2 * time.Second

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	debug = debug || cfg.Debug
	inputhook.SetDebugLogging(debug)
	bridge.SetDebugLogging(debug)
	rtc.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	injector, err := wininput.NewInjector()
	if err != nil {
		if !errors.Is(err, wininput.ErrUnsupported) {
			return err
		}
		log.Printf("input injection: %v", err)
	}

	var channel *rtc.Channel
	if cfg.WebRTCEnabled {
		channel, err = rtc.NewChannel(cfg.STUNURLs)
		if err != nil {
			return err
		}
	}

	appInstance, err := app.New(cfg, app.Deps{
		Session:  session.New(cfg.UIPassword),
		Runner:   inputhook.New(inputhook.Options{IgnoreInjected: cfg.IgnoreInjected}),
		Injector: injector,
		Cursor:   inputhook.SystemCursor{},
		Channel:  channel,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := appInstance.Start(ctx); err != nil {
		log.Printf("hook: not running: %v", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), hookStopTimeout)
		defer cancel()
		if err := appInstance.Stop(stopCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("hookbridge starting")
	logFileStatus("config check", filepath.Join(cfg.DataDir, config.FileName))
	logFileStatus("env check", filepath.Join(cfg.DataDir, ".env"))
	log.Printf("edge: side=%s margin=%dpx", cfg.EdgeSide, cfg.EdgeMarginPx)
	log.Printf("hook: ignore injected=%v", cfg.IgnoreInjected)
	if cfg.WebRTCEnabled {
		log.Printf("webrtc: enabled stun=%v", cfg.STUNURLs)
	} else {
		log.Printf("webrtc: disabled")
	}
	logListenStatus(cfg.ListenAddr)
}

// logFileStatus reports whether an optional config file was found.
func logFileStatus(label, path string) {
	if fileExists(path) {
		log.Printf("%s: ok (%s)", label, path)
	} else {
		log.Printf("%s: missing (%s)", label, path)
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
