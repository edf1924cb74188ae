package reqline

import (
	"bytes"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"

	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport"
)

// RequestLine is the only part of a request this server reads. Plain
// value, immutable once parsed.
type RequestLine struct {
	Method  method.Method
	URI     string
	Version proto.Proto
}

var crlf = []byte("\r\n")

// Parser accumulates bytes from a client until CRLF arrives and decodes
// the line in front of it. The buffer only grows within one Parse call
// and is reset at the next one.
type Parser struct {
	buff []byte
}

func NewParser(prealloc int) *Parser {
	return &Parser{
		buff: make([]byte, 0, prealloc),
	}
}

// Parse reads the client until the request line terminator shows up and
// decodes method, URI and version. A peer that goes away before the
// terminator yields status.ErrConnectionClosed; a line that doesn't
// decode yields status.ErrBadRequest.
func (p *Parser) Parse(client transport.Client) (RequestLine, error) {
	p.buff = p.buff[:0]

	var cursor, end int
	for {
		// a read error with no data is indistinguishable from a close;
		// an error alongside data will resurface on the next read
		data, _ := client.Read()
		if len(data) == 0 {
			return RequestLine{}, status.ErrConnectionClosed
		}

		p.buff = append(p.buff, data...)
		if i := bytes.Index(p.buff[cursor:], crlf); i != -1 {
			end = cursor + i
			break
		}

		// everything up to the last byte is now known to be free of the
		// terminator; the last byte may still turn out to be the CR of a
		// pair split across reads, so it gets rescanned next pass
		cursor = len(p.buff) - 1
	}

	return decode(p.buff[:end])
}

// decode splits the line on ASCII space into method, URI and version
// tokens. Trailing extra tokens are ignored, missing ones are an error.
func decode(line []byte) (RequestLine, error) {
	parts := bytes.Split(line, []byte{' '})
	if len(parts) < 3 {
		return RequestLine{}, status.ErrBadRequest
	}

	m := method.Parse(uf.B2S(parts[0]))
	if m == method.Unknown {
		return RequestLine{}, status.ErrBadRequest
	}

	if !utf8.Valid(parts[1]) {
		return RequestLine{}, status.ErrBadRequest
	}

	return RequestLine{
		Method: m,
		// copied out of the read buffer, which won't outlive this request
		URI:     string(parts[1]),
		Version: proto.FromBytes(parts[2]),
	}, nil
}
