package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport/dummy"
)

var frozen = time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)

func newRenderer(client *dummy.MockClient) *Renderer {
	r := NewRenderer(client, 1024)
	r.now = func() time.Time { return frozen }
	return r
}

const frozenDate = "Date: Wed, 21 Oct 2015 07:28:00 GMT\r\n"

func TestStatus(t *testing.T) {
	client := dummy.NewMockClient()
	r := newRenderer(client)

	require.NoError(t, r.Status(status.Text(status.NotFound), Options{}))
	want := "HTTP/1.0 404 Not Found\r\n" +
		frozenDate +
		"Content-Type: text\r\n" +
		"Content-Length: 13\r\n" +
		"\r\n" +
		"404 Not Found"
	require.Equal(t, want, string(client.Written))
}

func TestStatusOmitBody(t *testing.T) {
	// status-only responses with body omission send nothing at all
	client := dummy.NewMockClient()
	r := newRenderer(client)

	require.NoError(t, r.Status(status.Text(status.NotFound), Options{OmitBody: true}))
	require.Empty(t, client.Written)
}

func TestBuffer(t *testing.T) {
	client := dummy.NewMockClient()
	r := newRenderer(client)

	require.NoError(t, r.Buffer(status.Text(status.OK), []byte("<html>hi</html>"), mime.HTML, Options{}))
	want := "HTTP/1.0 200 Ok\r\n" +
		frozenDate +
		"Content-Type: text/html\r\n" +
		"Content-Length: 15\r\n" +
		"\r\n" +
		"<html>hi</html>"
	require.Equal(t, want, string(client.Written))
}

func TestBufferOmitBody(t *testing.T) {
	client := dummy.NewMockClient()
	r := newRenderer(client)

	require.NoError(t, r.Buffer(status.Text(status.OK), []byte("<html>hi</html>"), mime.HTML, Options{OmitBody: true}))
	written := string(client.Written)
	require.True(t, strings.HasSuffix(written, "Content-Length: 15\r\n\r\n"))
	require.NotContains(t, written, "<html>")
}

func TestStream(t *testing.T) {
	client := dummy.NewMockClient()
	r := newRenderer(client)

	body := "0123456789"
	require.NoError(t, r.Stream(status.Text(status.OK), strings.NewReader(body), mime.Plain, int64(len(body)), Options{}))
	written := string(client.Written)
	require.Contains(t, written, "Content-Length: 10\r\n")
	require.True(t, strings.HasSuffix(written, "\r\n"+body))
}

func TestStreamOmitBody(t *testing.T) {
	client := dummy.NewMockClient()
	r := newRenderer(client)

	require.NoError(t, r.Stream(status.Text(status.OK), strings.NewReader("payload"), mime.Plain, 7, Options{OmitBody: true}))
	require.True(t, strings.HasSuffix(string(client.Written), "Content-Length: 7\r\n\r\n"))
}

func TestBufferReuse(t *testing.T) {
	// the head buffer is shared between calls; a later response must not
	// carry leftovers of an earlier, longer one
	client := dummy.NewMockClient()
	r := newRenderer(client)

	require.NoError(t, r.Status(status.Text(status.MethodNotAllowed), Options{}))
	first := string(client.Written)
	client.Written = nil

	require.NoError(t, r.Status(status.Text(status.OK), Options{}))
	require.NotEqual(t, first, string(client.Written))
	require.True(t, strings.HasPrefix(string(client.Written), "HTTP/1.0 200 Ok\r\n"))
	require.True(t, strings.HasSuffix(string(client.Written), "\r\n200 Ok"))
}

func TestListing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	f, err := os.Open(dir)
	require.NoError(t, err)
	defer f.Close()
	entries, err := f.ReadDir(-1)
	require.NoError(t, err)

	page := string(Listing("/files", entries))
	require.Contains(t, page, "<title>Directory listing for /files</title>")
	require.Contains(t, page, "<h1>Directory listing for /files</h1>")
	require.Contains(t, page, `<a href="a.txt">a.txt</a>`)
	require.Contains(t, page, `<a href="sub/">sub/</a>`)
}
