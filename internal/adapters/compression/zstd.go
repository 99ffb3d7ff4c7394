// Package compression provides data compression for fault dumps using
// the zstd algorithm. It offers a thread-safe implementation with
// configurable compression levels and automatic pass-through for
// payloads that do not shrink.
package compression

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompression provides thread-safe compression and decompression
// with a configurable level. Small payloads and payloads that do not
// compress are passed through unchanged.
type ZstdCompression struct {
	level   uint8         // Current compression level (1-4)
	mu      sync.RWMutex  // Protects concurrent access to compression state
	decoder *zstd.Decoder // Thread-safe decoder instance for decompression
	encoder *zstd.Encoder // Thread-safe encoder instance for compression
}

// Compression level constants define the trade-off between compression
// ratio and speed. Higher levels provide better compression at the cost
// of increased CPU usage and time.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 3 // Balanced between speed and compression ratio
	BestLevel    uint8 = 4 // Maximum compression ratio, higher CPU usage
)

// NewZstdCompression creates a new zstd compression instance with the
// specified options. It initializes both encoder and decoder with
// parallel processing capabilities.
//
// Returns an error if:
// - The compression level is invalid
// - The encoder or decoder initialization fails
func NewZstdCompression(opts Options) (*ZstdCompression, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(int(opts.EncoderConcurrency)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency)))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress compresses the input data using zstd compression.
// It includes optimizations to:
// - Skip compression for small data blocks (< 64 bytes)
// - Return original data if compression doesn't reduce size
//
// The operation is thread-safe and can be called concurrently.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if len(data) < 64 {
		return data, nil
	}

	compressed := z.encoder.EncodeAll(data, nil)
	if len(compressed) < len(data) {
		return compressed, nil
	}

	return data, nil
}

// Decompress restores the original data from its compressed form.
// The operation is thread-safe and can be called concurrently.
//
// Returns an error if the input is not valid zstd compressed data.
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases all resources used by the compression instance.
// After closing, the instance cannot be used for compression or
// decompression.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
