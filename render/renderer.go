// Package render turns decoded records into the line-oriented diagnostic text
// the dumper writes to standard output.
//
// The output is meant for human inspection during reverse engineering, not as
// a machine-parsable contract. Two properties of the historical dumper are
// preserved deliberately:
//
//   - Timestamps render in UTC for most record kinds but in the local time
//     zone for GPS samples and tag 0x35. The asymmetry reflects the intended
//     meaning of the source data and is reproduced per tag, not unified.
//   - Unclassified payloads render as fixed-width hex dumps, 32 bytes per
//     line, annotated with an xxHash64 digest so repeated unknown payload
//     shapes stand out across a capture.
//
// Every Render call returns a freshly built string; there are no shared
// formatting buffers, so interleaved calls can never alias each other's
// results.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/ttbin/format"
	"github.com/arloliu/ttbin/record"
)

// timeLayout is the wall-clock layout of every rendered timestamp.
const timeLayout = "2006-01-02 15:04:05"

// Renderer formats decoded records. The zero value is not usable; construct
// with New.
type Renderer struct {
	dialect format.Dialect
	local   *time.Location
}

// New creates a Renderer for the given dialect, rendering local-time
// timestamps in the process's local zone.
func New(d format.Dialect) *Renderer {
	return &Renderer{dialect: d, local: time.Local}
}

// WithLocation overrides the zone used for local-time timestamps. Tests use
// it to pin the output to a fixed zone.
func (r *Renderer) WithLocation(loc *time.Location) *Renderer {
	r.local = loc

	return r
}

// SetDialect switches the dialect-sensitive parts of the output. The pump
// calls it once, when the header record selects the dialect for the pass.
func (r *Renderer) SetDialect(d format.Dialect) {
	r.dialect = d
}

// utcTime renders epoch seconds as zone-less UTC wall-clock time.
func utcTime(sec uint32) string {
	return time.Unix(int64(sec), 0).UTC().Format(timeLayout)
}

// localTime renders epoch seconds in the renderer's local zone.
func (r *Renderer) localTime(sec uint32) string {
	return time.Unix(int64(sec), 0).In(r.local).Format(timeLayout)
}

// Render formats one decoded record as one or more newline-terminated lines.
func (r *Renderer) Render(rec record.Record) string {
	switch v := rec.(type) {
	case *record.Header:
		return fmt.Sprintf("[%s] Header: file format %d (%s dialect), watch version (%d,%d,%d,%d)\n",
			utcTime(v.Timestamp), v.FormatMarker, v.Dialect(),
			v.Version[0], v.Version[1], v.Version[2], v.Version[3])
	case *record.RecordLengths:
		return "Record lengths (ignored)\n"
	case *record.LapMarker:
		return fmt.Sprintf("[%s] Lap: %d activity: %s\n", utcTime(v.Time), v.Lap, v.Activity)
	case *record.GPSFix:
		return r.renderGPS(v)
	case *record.StatusRecord:
		return fmt.Sprintf("Tag 0x23: %04X  %04X  %02X  (xxh64=%016x)\n%s",
			v.U1, v.U2, v.U3, v.Digest(), HexDump(v.Raw))
	case *record.HeartRateSample:
		return fmt.Sprintf("[%s] Heart BPM: %d\n", utcTime(v.Time), v.HeartRate)
	case *record.ActivitySummary:
		return fmt.Sprintf("Summary:\n  Activity type: %s\n  Distance: %d m\n  Duration: %d s\n  Calories: %d\n",
			v.Activity, v.Distance, v.Duration, v.Calories)
	case *record.TreadmillSample:
		return fmt.Sprintf("[%s] Treadmill: Distance: %.2f m  Calories: %d  Steps: %d\n",
			utcTime(v.Time), v.Distance, v.Calories, v.Steps)
	case *record.SwimSample:
		return fmt.Sprintf("[%s] Swim: Calories: %d\n%s", utcTime(v.Time), v.Calories, HexDump(v.Unknown[:]))
	case *record.Timestamped35:
		return fmt.Sprintf("Tag 0x35: %02X %02X  %s\n", v.Unknown[0], v.Unknown[1], r.localTime(v.Time))
	case *record.Unclassified:
		return fmt.Sprintf("Tag %s: (xxh64=%016x)\n%s", v.Tag(), v.Digest(), HexDump(v.Raw))
	default:
		return fmt.Sprintf("Tag %s: no renderer\n", rec.Tag())
	}
}

// renderGPS formats a location sample, surrounded by blank lines so fixes
// stand out in long dumps. A sample without satellite lock renders as a
// single "No GPS lock" line; none of its geometry fields are touched.
func (r *Renderer) renderGPS(g *record.GPSFix) string {
	if g.NoFix() {
		return "\nNo GPS lock\n\n"
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "[%s] GPS: Lat: %f, Long: %f, Speed: %.2f m/s, Cal: %d",
		r.localTime(g.Time), g.Latitude, g.Longitude, g.Speed, g.Calories)

	if r.dialect == format.DialectLegacy {
		fmt.Fprintf(&sb, ", Distance: %.1f m   Heading %.2f°\n", g.CumDistance, g.Heading)
		if len(g.Unknown) > 0 {
			sb.WriteString("  Unclassified tail:")
			sb.WriteString(HexDump(g.Unknown))
		}
		sb.WriteByte('\n')

		return sb.String()
	}

	fmt.Fprintf(&sb, ", Distance: %f m (+ %f m), Cycles: %d   Heading %.2f°\n\n",
		g.CumDistance, g.IncDistance, g.Cycles, g.Heading)

	return sb.String()
}

// UnknownTag formats the diagnostic for a tag byte with no known decoder.
// The offset is the position of the tag byte itself; only that byte has been
// consumed when the diagnostic is emitted.
func (r *Renderer) UnknownTag(tag format.Tag, offset int64) string {
	return fmt.Sprintf("Unknown tag %s at offset %d\n", tag, offset)
}
