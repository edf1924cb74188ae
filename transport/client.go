package transport

import (
	"net"
	"time"
)

// Client is a minimal byte-stream view of a connection. Read hands out
// whatever the socket currently has, bounded by the internal buffer.
type Client interface {
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		timeout: timeout,
	}
}

func (c *client) Read() ([]byte, error) {
	if c.timeout != 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
