package transport

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lumen-web/lumen/config"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

// TCP owns the listening socket and the accept loop. Shutdown is
// cooperative: Stop() refuses new connections, Wait() blocks until the
// connections already admitted have finished. Handlers are never
// interrupted mid-flight.
type TCP struct {
	l    listener
	wg   *sync.WaitGroup
	stop *atomic.Bool
}

func NewTCP() *TCP {
	return &TCP{
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) error {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}

	t.l, err = net.ListenTCP("tcp", tcpaddr)

	return err
}

// Addr returns the bound address. Valid only after Bind.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts connections until Stop is called or the listener
// fails, spawning cb in its own goroutine per connection. The in-flight
// counter is bumped before the goroutine starts, so a Stop immediately
// followed by Wait can never miss an admitted connection.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		if err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod)); err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			var operr *net.OpError
			if errors.As(err, &operr) && operr.Timeout() {
				continue
			}

			return err
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			cb(conn)
			_ = conn.Close()
			t.wg.Done()
		}(conn)
	}

	return nil
}

// Stop signals the accept loop to exit. It also expires the current
// accept deadline, so a blocked Accept wakes up right away instead of
// waiting out the interrupt period.
func (t *TCP) Stop() {
	t.stop.Store(true)

	if t.l != nil {
		_ = t.l.SetDeadline(time.Now())
	}
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

func (t *TCP) Wait() {
	t.wg.Wait()
}
