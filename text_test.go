package mdffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	got, err := DecodeText([]byte("héllo, 世界"))
	require.NoError(t, err)
	assert.Equal(t, "héllo, 世界", got)

	got, err = DecodeText(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeTextInvalidOffsets(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		offset int
	}{
		{name: "lone continuation", input: []byte{0x80}, offset: 0},
		{name: "truncated sequence", input: []byte{'a', 0xe4, 0xb8}, offset: 1},
		{name: "overlong encoding", input: []byte{'a', 'b', 0xc0, 0xaf}, offset: 2},
		{name: "surrogate", input: []byte{0xed, 0xa0, 0x80}, offset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.input)
			require.Error(t, err)
			assert.Empty(t, got)

			var encErr *EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, tt.offset, encErr.Offset)
		})
	}
}
