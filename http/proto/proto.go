package proto

import "github.com/indigo-web/utils/uf"

type Proto uint8

const (
	Unknown Proto = iota
	HTTP10
	HTTP11
)

func (p Proto) String() string {
	lut := [...]string{HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

// FromBytes matches the version token exactly. Everything besides
// HTTP/1.0 and HTTP/1.1 is Unknown, which is not an error by itself:
// whether an unknown version is acceptable is the caller's decision.
func FromBytes(raw []byte) Proto {
	switch uf.B2S(raw) {
	case "HTTP/1.0":
		return HTTP10
	case "HTTP/1.1":
		return HTTP11
	default:
		return Unknown
	}
}
