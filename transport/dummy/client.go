package dummy

import (
	"io"
	"net"

	"github.com/lumen-web/lumen/transport"
)

var _ transport.Client = new(MockClient)

// MockClient replays a fixed sequence of reads and records everything
// written into it.
type MockClient struct {
	reads    [][]byte
	pointer  int
	closed   bool
	writeErr error

	Written []byte
}

func NewMockClient(reads ...[]byte) *MockClient {
	return &MockClient{reads: reads}
}

// FailWrites makes every Write return err.
func (m *MockClient) FailWrites(err error) *MockClient {
	m.writeErr = err
	return m
}

func (m *MockClient) Read() ([]byte, error) {
	if m.closed || m.pointer >= len(m.reads) {
		return nil, io.EOF
	}

	piece := m.reads[m.pointer]
	m.pointer++

	return piece, nil
}

func (m *MockClient) Write(b []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}

	m.Written = append(m.Written, b...)

	return nil
}

func (m *MockClient) Remote() net.Addr {
	return nil
}

func (m *MockClient) Close() error {
	m.closed = true
	return nil
}
