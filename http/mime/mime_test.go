package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByPath(t *testing.T) {
	require.Equal(t, HTML, ByPath("/var/www/index.html"))
	require.Equal(t, Plain, ByPath("notes.txt"))
	require.Equal(t, OctetStream, ByPath("archive.tar.lz4"))
	require.Equal(t, OctetStream, ByPath("Makefile"))
}
