package mime

import "path/filepath"

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	JS          MIME = "text/javascript"
	XML         MIME = "text/xml"
	JSON        MIME = "application/json"
	PDF         MIME = "application/pdf"
	WASM        MIME = "application/wasm"
	ZIP         MIME = "application/zip"
	GZIP        MIME = "application/gzip"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/vnd.microsoft.icon"
	WEBP        MIME = "image/webp"
)

var Extension = map[string]MIME{
	".css":  CSS,
	".gif":  GIF,
	".gz":   GZIP,
	".htm":  HTML,
	".html": HTML,
	".ico":  ICO,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".json": JSON,
	".mjs":  JS,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".zip":  ZIP,
}

// ByPath infers a MIME from the file extension, falling back to
// application/octet-stream for everything it doesn't know.
func ByPath(path string) MIME {
	if m, found := Extension[filepath.Ext(path)]; found {
		return m
	}

	return OctetStream
}
