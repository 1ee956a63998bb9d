package record

import (
	"fmt"
	"math"

	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
)

// GPSFix is one location sample (tag 0x22). Its layout is the largest
// difference between the two dialects: the current dialect carries
// incremental and cumulative distance as 32-bit floats plus a cycle counter,
// the legacy dialect carries a single 16-bit deci-meter distance followed by
// an unclassified tail.
//
// When Time equals NoFixTime the watch had no satellite lock; Parse leaves
// every geometry field zero in that case and NoFix reports true. Callers must
// not interpret position or derived fields of a no-fix sample.
type GPSFix struct {
	Latitude    float64 // degrees, from 1e-7 fixed-point int32 at offset 0
	Longitude   float64 // degrees, from 1e-7 fixed-point int32 at offset 4
	Heading     float64 // degrees, 0 = North, from 0.01-degree uint16 at offset 8
	Speed       float64 // m/s, from 0.01 m/s uint16 at offset 10
	Time        uint32  // epoch seconds, offset 12
	Calories    uint16  // offset 16
	IncDistance float64 // meters since the previous sample
	CumDistance float64 // meters since activity start
	Cycles      uint8   // step/crank count, current dialect only
	Unknown     []byte  // legacy dialect tail, unclassified
}

func (g *GPSFix) Tag() format.Tag { return format.TagGPS }

// NoFix reports whether this sample was taken without satellite lock.
func (g *GPSFix) NoFix() bool {
	return g.Time == NoFixTime
}

// Parse decodes a GPS payload under dialect d.
//
// The time field is inspected first: a NoFixTime sentinel short-circuits the
// decode entirely, so no geometry field of a lock-less sample is ever
// interpreted.
func (g *GPSFix) Parse(data []byte, d format.Dialect) error {
	want, _ := PayloadSize(format.TagGPS, d)
	if len(data) != want {
		return fmt.Errorf("%w: GPS payload is %d bytes, want %d in %s dialect", errs.ErrInvalidRecordSize, len(data), want, d)
	}

	*g = GPSFix{Time: wire.Uint32(data[12:16])}
	if g.NoFix() {
		return nil
	}

	g.Latitude = float64(int32(wire.Uint32(data[0:4]))) * DegreesPerRawCoord
	g.Longitude = float64(int32(wire.Uint32(data[4:8]))) * DegreesPerRawCoord
	g.Heading = float64(wire.Uint16(data[8:10])) * DegreesPerRawHead
	g.Speed = float64(wire.Uint16(data[10:12])) * MetersPerSecPerRaw
	g.Calories = wire.Uint16(data[16:18])

	if d == format.DialectLegacy {
		dist := float64(wire.Uint16(data[18:20])) * MetersPerRawLegacyD
		g.CumDistance = dist
		g.Unknown = append([]byte(nil), data[20:]...)

		return nil
	}

	g.IncDistance = float64(math.Float32frombits(wire.Uint32(data[18:22])))
	g.CumDistance = float64(math.Float32frombits(wire.Uint32(data[22:26])))
	g.Cycles = data[26]

	return nil
}

// Bytes re-encodes the sample for dialect d, inverting the scale conversions
// Parse applied. A no-fix sample encodes as zero geometry under the sentinel
// time, which round-trips to the same no-fix record.
func (g *GPSFix) Bytes(d format.Dialect) []byte {
	size, _ := PayloadSize(format.TagGPS, d)
	b := make([]byte, 0, size)
	b = wire.AppendUint32(b, uint32(int32(math.Round(g.Latitude/DegreesPerRawCoord))))
	b = wire.AppendUint32(b, uint32(int32(math.Round(g.Longitude/DegreesPerRawCoord))))
	b = wire.AppendUint16(b, uint16(math.Round(g.Heading/DegreesPerRawHead)))
	b = wire.AppendUint16(b, uint16(math.Round(g.Speed/MetersPerSecPerRaw)))
	b = wire.AppendUint32(b, g.Time)
	b = wire.AppendUint16(b, g.Calories)

	if d == format.DialectLegacy {
		b = wire.AppendUint16(b, uint16(math.Round(g.CumDistance/MetersPerRawLegacyD)))
		b = append(b, g.Unknown...)
		for len(b) < size {
			b = append(b, 0)
		}

		return b[:size]
	}

	b = wire.AppendUint32(b, math.Float32bits(float32(g.IncDistance)))
	b = wire.AppendUint32(b, math.Float32bits(float32(g.CumDistance)))
	b = append(b, g.Cycles)

	return b
}
