package dummy

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockClient(t *testing.T) {
	slices := [][]byte{
		[]byte("Hello"), []byte("world!"),
	}
	client := NewMockClient(slices...)

	for _, slice := range slices {
		got, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, string(slice), string(got))
	}

	_, err := client.Read()
	require.EqualError(t, err, io.EOF.Error())

	require.NoError(t, client.Write([]byte("pong")))
	require.Equal(t, "pong", string(client.Written))
}
