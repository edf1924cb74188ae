package server

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dchest/uniuri"
	"github.com/rs/zerolog"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/pathlib"
	"github.com/lumen-web/lumen/internal/render"
	"github.com/lumen-web/lumen/internal/reqline"
	"github.com/lumen-web/lumen/transport"
)

// Server drives one connection through its whole lifetime: read the
// request line, validate method and version, resolve the path, serve,
// respond. Exactly one request per connection; keep-open is derived but
// a second request is never read.
type Server struct {
	resolver *pathlib.Resolver
	cfg      *config.Config
	log      zerolog.Logger
}

func New(resolver *pathlib.Resolver, cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{
		resolver: resolver,
		cfg:      cfg,
		log:      log,
	}
}

// Handle serves a single accepted client. Every failure terminates on
// this side of the boundary; nothing propagates back to the accept
// loop, and one broken connection never affects another.
func (s *Server) Handle(client transport.Client) {
	log := s.log.With().Str("conn", uniuri.NewLen(8)).Logger()
	renderer := render.NewRenderer(client, s.cfg.NET.WriteBufferSize)

	var opts render.Options
	line, err := reqline.NewParser(s.cfg.NET.ReadBufferSize).Parse(client)
	if err != nil {
		if errors.Is(err, status.ErrConnectionClosed) {
			// no request line, nobody to answer
			return
		}

		_ = renderer.Status(status.Text(status.BadRequest), opts)
		return
	}

	switch line.Method {
	case method.GET:
		opts.OmitBody = false
	case method.HEAD:
		opts.OmitBody = true
	default:
		_ = renderer.Status(status.Text(status.MethodNotAllowed), opts)
		return
	}

	switch line.Version {
	case proto.HTTP10:
		opts.KeepOpen = false
	case proto.HTTP11:
		opts.KeepOpen = true
	default:
		_ = renderer.Status(status.Text(status.HTTPVersionNotSupported), opts)
		return
	}

	log.Debug().
		Stringer("method", line.Method).
		Str("uri", line.URI).
		Msg("request")

	connErr, srvErr := s.serve(renderer, line.URI, opts)
	if srvErr != nil {
		log.Error().Err(srvErr).Str("uri", line.URI).Msg("serving failed")
		connErr = renderer.Status(status.Text(status.InternalServerError), opts)
	}
	if connErr != nil {
		log.Debug().Err(connErr).Msg("response write failed, dropping the connection")
	}
}

// serve resolves the URI and emits the response. connErr reports a
// failed response write (the connection is simply dropped); srvErr
// reports a server-side I/O failure that still deserves a 500.
func (s *Server) serve(r *render.Renderer, uri string, opts render.Options) (connErr, srvErr error) {
	path, isDir, err := s.resolver.Resolve(uri)
	if err != nil {
		// traversal and absence look identical from outside
		return r.Status(status.Text(status.NotFound), opts), nil
	}

	if isDir {
		entries, err := readDir(path)
		if err != nil {
			return nil, err
		}

		return r.Buffer(status.Text(status.OK), render.Listing(uri, entries), mime.HTML, opts), nil
	}

	file, size, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return r.Stream(status.Text(status.OK), file, mime.ByPath(path), size, opts), nil
}

// readDir enumerates entries in whatever order the OS yields them,
// deliberately unsorted.
func readDir(path string) ([]fs.DirEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.ReadDir(-1)
}

func openFile(path string) (*os.File, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, err
	}

	return file, info.Size(), nil
}
