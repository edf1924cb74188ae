package render

import (
	"io"
	"strconv"
	"time"

	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport"
)

// protoToken is the protocol emitted on every status line. The server
// answers with it no matter what version the request carried; keep-open
// is derived upstream but never changes what is written here.
const protoToken = "HTTP/1.0 "

// httpDate is the Date header layout: RFC 1123 with a literal GMT zone.
const httpDate = "Mon, 02 Jan 2006 15:04:05 GMT"

var crlf = []byte("\r\n")

// Options carries the per-response switches derived from the request:
// KeepOpen from the version, OmitBody from the method. Derived once,
// never mutated afterwards.
type Options struct {
	KeepOpen bool
	OmitBody bool
}

// Renderer frames single responses for one client. The head-assembly
// buffer is shared by all three delivery modes and cleared at the start
// of each call.
type Renderer struct {
	client transport.Client
	buff   []byte
	now    func() time.Time
}

func NewRenderer(client transport.Client, prealloc int) *Renderer {
	return &Renderer{
		client: client,
		buff:   make([]byte, 0, prealloc),
		now:    time.Now,
	}
}

func (r *Renderer) head(st status.Status, ctype mime.MIME, clen int64) {
	r.buff = r.buff[:0]
	r.buff = append(r.buff, protoToken...)
	r.buff = append(r.buff, st...)
	r.buff = append(r.buff, crlf...)
	r.buff = append(r.buff, "Date: "...)
	r.buff = r.now().UTC().AppendFormat(r.buff, httpDate)
	r.buff = append(r.buff, crlf...)
	r.buff = append(r.buff, "Content-Type: "...)
	r.buff = append(r.buff, ctype...)
	r.buff = append(r.buff, crlf...)
	r.buff = append(r.buff, "Content-Length: "...)
	r.buff = strconv.AppendInt(r.buff, clen, 10)
	r.buff = append(r.buff, crlf...)
	r.buff = append(r.buff, crlf...)
}

// Status responds with the status text doubling as the body. With
// OmitBody set, nothing at all is written, headers included.
func (r *Renderer) Status(st status.Status, opts Options) error {
	r.head(st, "text", int64(len(st)))
	if opts.OmitBody {
		return nil
	}

	r.buff = append(r.buff, st...)

	return r.client.Write(r.buff)
}

// Buffer responds with a fully materialized body. With OmitBody set,
// the head goes out and the body is withheld; Content-Length still
// reports the body's real length.
func (r *Renderer) Buffer(st status.Status, body []byte, ctype mime.MIME, opts Options) error {
	r.head(st, ctype, int64(len(body)))
	if err := r.client.Write(r.buff); err != nil {
		return err
	}
	if opts.OmitBody {
		return nil
	}

	return r.client.Write(body)
}

// Stream responds with a body copied straight from src without
// buffering; clen must be its exact byte length. OmitBody semantics
// match Buffer.
func (r *Renderer) Stream(st status.Status, src io.Reader, ctype mime.MIME, clen int64, opts Options) error {
	r.head(st, ctype, clen)
	if err := r.client.Write(r.buff); err != nil {
		return err
	}
	if opts.OmitBody {
		return nil
	}

	_, err := io.Copy(clientWriter{r.client}, src)

	return err
}

// clientWriter adapts transport.Client to io.Writer for io.Copy.
type clientWriter struct {
	client transport.Client
}

func (w clientWriter) Write(b []byte) (int, error) {
	if err := w.client.Write(b); err != nil {
		return 0, err
	}

	return len(b), nil
}
