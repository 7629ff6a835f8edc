package wavout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	// 0, 1, -1, 32767, -32768 as little endian int16
	pcm := []byte{0x00, 0x00, 0x01, 0x00, 0xff, 0xff, 0xff, 0x7f, 0x00, 0x80}
	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Write(out, pcm, 16000))
	require.NoError(t, out.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()
	decoder := wav.NewDecoder(in)
	require.True(t, decoder.IsValidFile())
	buffer, err := decoder.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 16000, buffer.Format.SampleRate)
	assert.Equal(t, NumChannels, buffer.Format.NumChannels)
	assert.Equal(t, []int{0, 1, -1, 32767, -32768}, buffer.Data)
}

func TestWriteDefaultSampleRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Write(out, []byte{0x10, 0x00}, 0))
	require.NoError(t, out.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()
	decoder := wav.NewDecoder(in)
	decoder.ReadInfo()
	require.NoError(t, decoder.Err())
	assert.Equal(t, uint32(DefaultSampleRate), decoder.SampleRate)
	assert.Equal(t, uint16(BitDepth), decoder.BitDepth)
}

func TestWriteRejectsOddLength(t *testing.T) {
	out, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer out.Close()
	assert.Error(t, Write(out, []byte{0x01, 0x02, 0x03}, 16000))
}
