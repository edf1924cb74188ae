package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, "200 Ok", Text(OK))
	require.Equal(t, "404 Not Found", Text(NotFound))
	require.Empty(t, Text(Code(418)))
}
