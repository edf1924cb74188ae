package lumen

import (
	"net"

	"github.com/rs/zerolog"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/internal/pathlib"
	"github.com/lumen-web/lumen/internal/server"
	"github.com/lumen-web/lumen/transport"
)

// App wires the listener, the root resolver and the per-connection
// handler together. The usual lifecycle is New -> Tune/Log ->
// Serve, with GracefulStop called from elsewhere to wind it down.
type App struct {
	addr  string
	cfg   *config.Config
	log   zerolog.Logger
	hooks hooks
	tcp   *transport.TCP
}

type hooks struct {
	OnStart, OnStop func()
}

func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
		log:  zerolog.Nop(),
		tcp:  transport.NewTCP(),
	}
}

// Tune replaces default settings.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

func (a *App) Log(log zerolog.Logger) *App {
	a.log = log
	return a
}

// NotifyOnStart calls the callback once the listener is bound and about
// to accept connections.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the accept loop has exited and
// every in-flight connection has finished.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the bound listener address. Valid once the OnStart hook
// has fired.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve binds the listener and runs the accept loop until it fails or
// GracefulStop is called. Either way it drains first: no new
// connections are admitted, the admitted ones run to completion, and
// only then does Serve return.
func (a *App) Serve() error {
	resolver, err := pathlib.NewResolver(a.cfg.FS.Root)
	if err != nil {
		return err
	}

	if err = a.tcp.Bind(a.addr); err != nil {
		return err
	}

	handler := server.New(resolver, a.cfg, a.log)
	a.log.Info().
		Str("addr", a.tcp.Addr().String()).
		Str("root", resolver.Root()).
		Msg("serving")
	callIfNotNil(a.hooks.OnStart)

	err = a.tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		buff := make([]byte, a.cfg.NET.ReadBufferSize)
		handler.Handle(transport.NewClient(conn, a.cfg.NET.ReadTimeout, buff))
	})

	a.log.Info().Msg("draining")
	a.tcp.Wait()
	a.tcp.Close()
	a.log.Info().Msg("stopped")
	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving the
// ones already admitted. The call doesn't block; Serve returns once the
// drain completes.
func (a *App) GracefulStop() {
	a.tcp.Stop()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
