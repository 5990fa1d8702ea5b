package usecase

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// writeWAV wraps raw s16le PCM in a minimal RIFF header so the captured
// answer is playable from the history view.
func writeWAV(path string, pcm []byte, sampleRate int, channels int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create recordings directory: %w", err)
	}

	const bitsPerSample = 16
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create audio artifact: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(header); err != nil {
		return fmt.Errorf("write audio header: %w", err)
	}
	if _, err := out.Write(pcm); err != nil {
		return fmt.Errorf("write audio data: %w", err)
	}
	return nil
}
