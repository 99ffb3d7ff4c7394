// Package report persists miscompare dumps for offline analysis. Each
// fault becomes one file in the report directory: a small header, then
// the protowire-framed record, zstd-compressed when that pays off.
package report

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"

	"memscrub/internal/adapters/compression"
	"memscrub/internal/core/domain"
	"memscrub/internal/core/ports"
	"memscrub/pkg/fs"
)

// Dump file layout: 4-byte magic, 1-byte flags, 4-byte payload length
// (little endian), payload.
const (
	headerSize     = 9
	flagCompressed = 1 << 0

	// dumpExtension is the suffix every fault dump file carries.
	dumpExtension = ".msr"
)

var magic = [4]byte{'M', 'S', 'R', '1'}

// ErrReporterClosed indicates a Report call after Close.
var ErrReporterClosed = errors.New("report: reporter is closed")

// DiskReporter writes one dump file per fault. Safe for concurrent use
// by multiple workers; files are named by fault UUID so writers never
// collide.
type DiskReporter struct {
	directory  string
	compressor *compression.ZstdCompression // nil when compression is off
	closed     atomic.Bool
}

// NewDiskReporter creates the report directory if needed and returns a
// reporter writing into it. An unwritable directory fails here, at
// setup, rather than on the first fault of a long run.
func NewDiskReporter(opts *domain.ReportOptions) (*DiskReporter, error) {
	if err := fs.EnsureDir(opts.Directory); err != nil {
		return nil, fmt.Errorf("error creating report directory : %w", err)
	}
	if err := fs.IsWritableDir(opts.Directory); err != nil {
		return nil, fmt.Errorf("error checking report directory : %w", err)
	}

	reporter := DiskReporter{directory: opts.Directory}
	if opts.Compress {
		compressor, err := compression.NewZstdCompression(compression.DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("error creating compressor : %w", err)
		}
		reporter.compressor = compressor
	}

	return &reporter, nil
}

// Report persists one fault and returns the path of the written file.
func (r *DiskReporter) Report(fault *domain.Fault) (string, error) {
	if r.closed.Load() {
		return "", ErrReporterClosed
	}

	payload := EncodeRecord(fault)

	var flags byte
	if r.compressor != nil {
		compressed, err := r.compressor.Compress(payload)
		if err != nil {
			return "", fmt.Errorf("error compressing fault record : %w", err)
		}
		// Compress hands the input back untouched when shrinking it
		// was not worth it; only a genuinely smaller payload carries
		// the compressed flag.
		if len(compressed) < len(payload) {
			payload = compressed
			flags |= flagCompressed
		}
	}

	buf := make([]byte, headerSize, headerSize+len(payload))
	copy(buf, magic[:])
	buf[4] = flags
	binary.LittleEndian.PutUint32(buf[5:], uint32(len(payload)))
	buf = append(buf, payload...)

	name := fmt.Sprintf("fault-%s%s", uuid.New(), dumpExtension)
	path := filepath.Join(r.directory, name)

	// 0644: owner read/write, others read.
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", fmt.Errorf("error writing fault dump : %w", err)
	}
	return path, nil
}

// Close releases the compressor. Idempotent.
func (r *DiskReporter) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	if r.compressor != nil {
		return r.compressor.Close()
	}
	return nil
}

// ListDumps returns the fault dump files under directory, sorted by
// name.
func ListDumps(directory string) ([]string, error) {
	return fs.ListByExtension(directory, dumpExtension)
}

// Load reads a dump file back into a fault record. Used by tooling and
// tests, never by the stress path.
func Load(path string) (*domain.Fault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fault dump : %w", err)
	}

	if len(data) < headerSize || [4]byte(data[:4]) != magic {
		return nil, fmt.Errorf("%s is not a fault dump", path)
	}

	flags := data[4]
	length := binary.LittleEndian.Uint32(data[5:9])
	payload := data[headerSize:]
	if uint32(len(payload)) != length {
		return nil, fmt.Errorf("truncated fault dump: header says %d bytes, have %d", length, len(payload))
	}

	if flags&flagCompressed != 0 {
		decompressor, err := compression.NewZstdCompression(compression.DefaultOptions())
		if err != nil {
			return nil, err
		}
		defer decompressor.Close()

		payload, err = decompressor.Decompress(payload)
		if err != nil {
			return nil, err
		}
	}

	return DecodeRecord(payload)
}

var _ ports.FaultReporter = (*DiskReporter)(nil)
