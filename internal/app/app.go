// Package app wires the hook, edge switcher, bridge and signaling together.
package app

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/frudas24/pointerhook/internal/bridge"
	"github.com/frudas24/pointerhook/internal/config"
	"github.com/frudas24/pointerhook/internal/edge"
	"github.com/frudas24/pointerhook/internal/inputhook"
	"github.com/frudas24/pointerhook/internal/monitor"
	"github.com/frudas24/pointerhook/internal/rtc"
	"github.com/frudas24/pointerhook/internal/session"
	"github.com/frudas24/pointerhook/internal/signaling"
	"github.com/frudas24/pointerhook/internal/wininput"
)

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Monitor, error)

// Deps groups the collaborators App does not build itself.
type Deps struct {
	Session  *session.Session
	Runner   *inputhook.Runner
	Injector wininput.Injector
	Cursor   edge.Cursor
	// Channel is nil when WebRTC is disabled.
	Channel *rtc.Channel
	// Monitors defaults to monitor.ListMonitors.
	Monitors MonitorProvider
}

// App coordinates the HTTP API, websocket servers and the hook.
type App struct {
	mu           sync.Mutex
	cfg          config.Config
	session      *session.Session
	runner       *inputhook.Runner
	channel      *rtc.Channel
	switcher     *edge.Switcher
	bridge       *bridge.Server
	signaling    *signaling.Server
	listMonitors MonitorProvider
	monitors     []monitor.Monitor
	cancel       context.CancelFunc
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, deps Deps) (*App, error) {
	if deps.Session == nil {
		return nil, errors.New("session is required")
	}
	if deps.Runner == nil {
		return nil, errors.New("hook runner is required")
	}
	if deps.Injector == nil {
		return nil, errors.New("injector is required")
	}
	if deps.Cursor == nil {
		return nil, errors.New("cursor is required")
	}
	side, err := edge.ParseSide(cfg.EdgeSide)
	if err != nil {
		return nil, err
	}
	if deps.Monitors == nil {
		deps.Monitors = monitor.ListMonitors
	}

	app := &App{
		cfg:          cfg,
		session:      deps.Session,
		runner:       deps.Runner,
		channel:      deps.Channel,
		listMonitors: deps.Monitors,
	}

	queue := bridge.NewQueue(cfg.EventQueueSize)
	app.switcher = edge.NewSwitcher(side, cfg.EdgeMarginPx, deps.Runner, deps.Cursor, queue.Publish)
	app.bridge = bridge.NewServer(deps.Session, app.switcher, deps.Injector, deps.Cursor, queue)
	deps.Runner.SetIgnoreInjected(cfg.IgnoreInjected)
	deps.Runner.SetHandler(app.switcher.Handle)

	if deps.Channel != nil {
		deps.Channel.SetHandlers(app.bridge.HandleData, deps.Session.SetTransportRTC)
		app.bridge.SetMirror(deps.Channel)
		app.signaling = signaling.NewServer(deps.Channel, deps.Session.IsAuthenticated)
	}
	return app, nil
}

// Start loads the monitor layout, starts the event pump and installs the hook.
// A hook install failure is returned but leaves the HTTP side usable.
func (a *App) Start(ctx context.Context) error {
	if err := a.RefreshMonitors(); err != nil {
		log.Printf("monitors: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()
	go a.bridge.Run(ctx)

	if err := a.runner.Start(); err != nil {
		return err
	}
	log.Printf("hook: running edge=%s", a.cfg.EdgeSide)
	return nil
}

// Stop releases capture, closes the peer and removes the hook, bounded by ctx.
func (a *App) Stop(ctx context.Context) error {
	if a.switcher.Capturing() {
		a.switcher.Release()
	}
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.mu.Unlock()
	if a.channel != nil {
		a.channel.ClosePeer()
	}

	err := a.runner.Stop(ctx)
	a.runner.SetHandler(nil)
	if errors.Is(err, inputhook.ErrNotRunning) {
		return nil
	}
	return err
}

// RefreshMonitors re-reads the monitor layout and hands it to the switcher.
func (a *App) RefreshMonitors() error {
	monitors, err := a.listMonitors()
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.monitors = monitors
	a.mu.Unlock()
	a.switcher.SetMonitors(monitors)
	return nil
}

// ListMonitors returns the cached monitor list.
func (a *App) ListMonitors() ([]monitor.Monitor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]monitor.Monitor, len(a.monitors))
	copy(out, a.monitors)
	return out, nil
}

// Signaling returns the signaling websocket handler, or nil when WebRTC is disabled.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}

// Bridge returns the control websocket handler.
func (a *App) Bridge() *bridge.Server {
	return a.bridge
}
