// Package wavout wraps raw PCM audio returned by the server into a WAV file.
package wavout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	NumChannels       = 1
	BitDepth          = 16
	DefaultSampleRate = 44100 // used by the server when no sample rate is requested
	pcmAudioFormat    = 1
)

// Write encodes pcm, signed 16 bits little endian mono samples, as a WAV
// stream into out.
func Write(out io.WriteSeeker, pcm []byte, sampleRate int) (err error) {
	if len(pcm)%2 != 0 {
		return errors.New("odd number of bytes in 16 bits PCM data")
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	// Create the raw buffer
	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
	}
	audioBuffer := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: BitDepth,
	}
	// Create a standard wave encoder
	wavEncoder := wav.NewEncoder(out, sampleRate, BitDepth, NumChannels, pcmAudioFormat)
	if err = wavEncoder.Write(audioBuffer); err != nil {
		return fmt.Errorf("failed to encode audio samples as wav: %w", err)
	}
	if err = wavEncoder.Close(); err != nil {
		return fmt.Errorf("failed to flush wav encoder: %w", err)
	}
	return
}
