package report

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"

	"memscrub/internal/core/domain"
)

// Fault records are framed as protobuf wire data, hand-encoded with
// protowire so no generated code is needed for a six-field record.
// Field numbers are frozen; only additions are allowed.
const (
	fieldRunID    = 1  // bytes, 16-byte UUID
	fieldWorker   = 2  // varint
	fieldPass     = 3  // varint
	fieldStage    = 4  // varint
	fieldPattern  = 5  // string
	fieldVariant  = 6  // string
	fieldExpected = 7  // string, fixed hex rendering
	fieldActual   = 8  // string, fixed hex rendering
	fieldDetected = 9  // varint, unix nanoseconds
	fieldRegion   = 10 // bytes, little-endian 64-bit words
)

// EncodeRecord serializes a fault into its wire form.
func EncodeRecord(fault *domain.Fault) []byte {
	region := make([]byte, len(fault.Region)*8)
	for i, w := range fault.Region {
		binary.LittleEndian.PutUint64(region[i*8:], w)
	}

	buf := make([]byte, 0, 128+len(region))
	buf = protowire.AppendTag(buf, fieldRunID, protowire.BytesType)
	buf = protowire.AppendBytes(buf, fault.RunID[:])
	buf = protowire.AppendTag(buf, fieldWorker, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(fault.Worker))
	buf = protowire.AppendTag(buf, fieldPass, protowire.VarintType)
	buf = protowire.AppendVarint(buf, fault.Pass)
	buf = protowire.AppendTag(buf, fieldStage, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(fault.Stage))
	buf = protowire.AppendTag(buf, fieldPattern, protowire.BytesType)
	buf = protowire.AppendString(buf, string(fault.Pattern))
	buf = protowire.AppendTag(buf, fieldVariant, protowire.BytesType)
	buf = protowire.AppendString(buf, string(fault.Variant))
	buf = protowire.AppendTag(buf, fieldExpected, protowire.BytesType)
	buf = protowire.AppendString(buf, fault.Expected)
	buf = protowire.AppendTag(buf, fieldActual, protowire.BytesType)
	buf = protowire.AppendString(buf, fault.Actual)
	buf = protowire.AppendTag(buf, fieldDetected, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(fault.DetectedAt.UnixNano()))
	buf = protowire.AppendTag(buf, fieldRegion, protowire.BytesType)
	buf = protowire.AppendBytes(buf, region)
	return buf
}

// DecodeRecord parses a wire-form fault record. Unknown fields are
// skipped so newer dumps stay readable.
func DecodeRecord(data []byte) (*domain.Fault, error) {
	fault := &domain.Fault{}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("malformed record tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("malformed varint for field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]

			switch num {
			case fieldWorker:
				fault.Worker = int(v)
			case fieldPass:
				fault.Pass = v
			case fieldStage:
				fault.Stage = domain.FaultStage(v)
			case fieldDetected:
				fault.DetectedAt = time.Unix(0, int64(v))
			}

		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("malformed bytes for field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]

			switch num {
			case fieldRunID:
				id, err := uuid.FromBytes(v)
				if err != nil {
					return nil, fmt.Errorf("malformed run id: %w", err)
				}
				fault.RunID = id
			case fieldPattern:
				fault.Pattern = domain.PatternKind(v)
			case fieldVariant:
				fault.Variant = domain.CopyVariant(v)
			case fieldExpected:
				fault.Expected = string(v)
			case fieldActual:
				fault.Actual = string(v)
			case fieldRegion:
				if len(v)%8 != 0 {
					return nil, fmt.Errorf("region payload is %d bytes, not a whole number of words", len(v))
				}
				words := make([]uint64, len(v)/8)
				for i := range words {
					words[i] = binary.LittleEndian.Uint64(v[i*8:])
				}
				fault.Region = words
			}

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("malformed field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}

	return fault, nil
}
