package record

import (
	"fmt"
	"math"

	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
)

// LapMarker is a lap boundary event (tag 0x21).
type LapMarker struct {
	Lap      uint8               // byte offset 0
	Activity format.ActivityType // byte offset 1
	Time     uint32              // byte offset 2-5, epoch seconds
}

func (l *LapMarker) Tag() format.Tag { return format.TagLap }

func (l *LapMarker) Parse(data []byte, _ format.Dialect) error {
	if len(data) != LapSize {
		return fmt.Errorf("%w: lap payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), LapSize)
	}

	l.Lap = data[0]
	l.Activity = format.ActivityType(data[1])
	l.Time = wire.Uint32(data[2:6])

	return nil
}

func (l *LapMarker) Bytes(_ format.Dialect) []byte {
	b := make([]byte, 0, LapSize)
	b = append(b, l.Lap, uint8(l.Activity))
	b = wire.AppendUint32(b, l.Time)

	return b
}

// HeartRateSample is one pulse reading (tag 0x25). The current dialect has a
// reserved byte between the rate and the timestamp; the legacy dialect does
// not.
type HeartRateSample struct {
	HeartRate uint8  // BPM, byte offset 0
	Reserved  uint8  // current dialect only, byte offset 1
	Time      uint32 // epoch seconds
}

func (h *HeartRateSample) Tag() format.Tag { return format.TagHeartRate }

func (h *HeartRateSample) Parse(data []byte, d format.Dialect) error {
	want, _ := PayloadSize(format.TagHeartRate, d)
	if len(data) != want {
		return fmt.Errorf("%w: heart-rate payload is %d bytes, want %d in %s dialect", errs.ErrInvalidRecordSize, len(data), want, d)
	}

	h.HeartRate = data[0]
	if d == format.DialectLegacy {
		h.Reserved = 0
		h.Time = wire.Uint32(data[1:5])

		return nil
	}

	h.Reserved = data[1]
	h.Time = wire.Uint32(data[2:6])

	return nil
}

func (h *HeartRateSample) Bytes(d format.Dialect) []byte {
	size, _ := PayloadSize(format.TagHeartRate, d)
	b := make([]byte, 0, size)
	b = append(b, h.HeartRate)
	if d != format.DialectLegacy {
		b = append(b, h.Reserved)
	}
	b = wire.AppendUint32(b, h.Time)

	return b
}

// ActivitySummary is the end-of-activity totals record (tag 0x27).
//
// The wire stores duration minus one second; Parse applies the +1 correction
// so Duration is the actual duration.
type ActivitySummary struct {
	Activity format.ActivityType // byte offset 0-3
	Distance uint32              // meters, byte offset 4-7
	Duration uint32              // seconds, byte offset 8-11 stored as actual-1
	Calories uint32              // byte offset 12-15
}

func (s *ActivitySummary) Tag() format.Tag { return format.TagSummary }

func (s *ActivitySummary) Parse(data []byte, _ format.Dialect) error {
	if len(data) != SummarySize {
		return fmt.Errorf("%w: summary payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), SummarySize)
	}

	s.Activity = format.ActivityType(wire.Uint32(data[0:4]))
	s.Distance = wire.Uint32(data[4:8])
	s.Duration = wire.Uint32(data[8:12]) + 1
	s.Calories = wire.Uint32(data[12:16])

	return nil
}

func (s *ActivitySummary) Bytes(_ format.Dialect) []byte {
	b := make([]byte, 0, SummarySize)
	b = wire.AppendUint32(b, uint32(s.Activity))
	b = wire.AppendUint32(b, s.Distance)
	b = wire.AppendUint32(b, s.Duration-1)
	b = wire.AppendUint32(b, s.Calories)

	return b
}

// TreadmillSample is one indoor run/walk sample (tag 0x32).
type TreadmillSample struct {
	Time     uint32  // epoch seconds, byte offset 0-3
	Distance float64 // meters, float32 on the wire at byte offset 4-7
	Calories uint32  // byte offset 8-11
	Steps    uint32  // byte offset 12-15
	Unknown  [2]byte // byte offset 16-17, purpose not established
}

func (t *TreadmillSample) Tag() format.Tag { return format.TagTreadmill }

func (t *TreadmillSample) Parse(data []byte, _ format.Dialect) error {
	if len(data) != TreadmillSize {
		return fmt.Errorf("%w: treadmill payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), TreadmillSize)
	}

	t.Time = wire.Uint32(data[0:4])
	t.Distance = float64(math.Float32frombits(wire.Uint32(data[4:8])))
	t.Calories = wire.Uint32(data[8:12])
	t.Steps = wire.Uint32(data[12:16])
	copy(t.Unknown[:], data[16:18])

	return nil
}

func (t *TreadmillSample) Bytes(_ format.Dialect) []byte {
	b := make([]byte, 0, TreadmillSize)
	b = wire.AppendUint32(b, t.Time)
	b = wire.AppendUint32(b, math.Float32bits(float32(t.Distance)))
	b = wire.AppendUint32(b, t.Calories)
	b = wire.AppendUint32(b, t.Steps)
	b = append(b, t.Unknown[:]...)

	return b
}

// SwimSample is one swim segment (tag 0x34). Fourteen bytes of its payload
// remain unclassified and are retained raw for diagnostic display.
type SwimSample struct {
	Time     uint32   // epoch seconds, byte offset 0-3
	Unknown  [14]byte // byte offset 4-17, purpose not established
	Calories uint32   // byte offset 18-21
}

func (s *SwimSample) Tag() format.Tag { return format.TagSwim }

func (s *SwimSample) Parse(data []byte, _ format.Dialect) error {
	if len(data) != SwimSize {
		return fmt.Errorf("%w: swim payload is %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), SwimSize)
	}

	s.Time = wire.Uint32(data[0:4])
	copy(s.Unknown[:], data[4:18])
	s.Calories = wire.Uint32(data[18:22])

	return nil
}

func (s *SwimSample) Bytes(_ format.Dialect) []byte {
	b := make([]byte, 0, SwimSize)
	b = wire.AppendUint32(b, s.Time)
	b = append(b, s.Unknown[:]...)
	b = wire.AppendUint32(b, s.Calories)

	return b
}
