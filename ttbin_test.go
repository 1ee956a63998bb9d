package ttbin

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
	"github.com/arloliu/ttbin/record"
)

// epoch2015 is 2015-01-01 00:00:00 UTC.
const epoch2015 = 1420070400

// headerStream returns a complete header record, tag byte included, for the
// dialect the marker selects.
func headerStream(t *testing.T, marker byte) []byte {
	t.Helper()

	h := &record.Header{
		FormatMarker: marker,
		Version:      [4]byte{1, 8, 42, 0},
		Timestamp:    epoch2015,
	}
	payload := h.Bytes(format.DetectDialect(marker))

	return append([]byte{byte(format.TagHeader)}, payload...)
}

func appendRecord(stream []byte, tag format.Tag, payload []byte) []byte {
	stream = append(stream, byte(tag))

	return append(stream, payload...)
}

func dump(t *testing.T, stream []byte) (string, Stats, error) {
	t.Helper()

	var out bytes.Buffer
	stats, err := Dump(bytes.NewReader(stream), &out, WithLocation(time.UTC))

	return out.String(), stats, err
}

func TestDump_HeaderOnly(t *testing.T) {
	out, stats, err := dump(t, headerStream(t, 0x07))

	require.NoError(t, err)
	require.Equal(t, 1, stats.Records)
	require.Zero(t, stats.UnknownTags)
	require.Equal(t, int64(1+record.HeaderSizeCurrent), stats.Bytes)
	require.Equal(t, "[2015-01-01 00:00:00] Header: file format 7 (Current dialect), watch version (1,8,42,0)\n", out)
}

func TestDump_EmptyStream(t *testing.T) {
	out, stats, err := dump(t, nil)

	require.NoError(t, err)
	require.Zero(t, stats.Records)
	require.Empty(t, out)
}

func TestDump_GPSNoFix(t *testing.T) {
	gps := &record.GPSFix{Time: record.NoFixTime}
	stream := appendRecord(headerStream(t, 0x07), format.TagGPS, gps.Bytes(format.DialectCurrent))

	out, stats, err := dump(t, stream)

	require.NoError(t, err)
	require.Equal(t, 2, stats.Records)
	require.Contains(t, out, "Header: file format 7")
	require.Contains(t, out, "No GPS lock")
	require.NotContains(t, out, "Lat:")
}

func TestDump_SummaryDurationCorrection(t *testing.T) {
	// Raw duration 59 on the wire must print as 60 seconds.
	summary := &record.ActivitySummary{Activity: format.ActivityRun, Distance: 10000, Duration: 60, Calories: 450}
	stream := appendRecord(headerStream(t, 0x07), format.TagSummary, summary.Bytes(format.DialectCurrent))

	out, _, err := dump(t, stream)

	require.NoError(t, err)
	require.Contains(t, out, "Duration: 60 s")
}

func TestDump_UnknownTag(t *testing.T) {
	t.Run("Diagnostic names the tag and its offset", func(t *testing.T) {
		stream := append(headerStream(t, 0x07), 0x99)

		out, stats, err := dump(t, stream)

		require.NoError(t, err)
		require.Equal(t, 1, stats.UnknownTags)
		require.Contains(t, out, "Unknown tag 0x99 at offset 113")
	})

	t.Run("The next byte is read as a new tag", func(t *testing.T) {
		hr := &record.HeartRateSample{HeartRate: 162, Time: epoch2015}
		stream := append(headerStream(t, 0x07), 0x99)
		stream = appendRecord(stream, format.TagHeartRate, hr.Bytes(format.DialectCurrent))

		out, stats, err := dump(t, stream)

		require.NoError(t, err)
		require.Equal(t, 2, stats.Records)
		require.Equal(t, 1, stats.UnknownTags)
		require.Contains(t, out, "Unknown tag 0x99 at offset 113")
		require.Contains(t, out, "Heart BPM: 162")
	})
}

func TestDump_TruncatedRecord(t *testing.T) {
	t.Run("Mid-payload truncation is fatal", func(t *testing.T) {
		// A heart-rate record cut to 2 of its 6 payload bytes.
		stream := append(headerStream(t, 0x07), byte(format.TagHeartRate), 0xA0, 0x00)

		out, stats, err := dump(t, stream)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTruncatedRecord)
		require.Equal(t, 1, stats.Records)
		require.Contains(t, out, "Header:")
		require.NotContains(t, out, "Heart BPM")
	})

	t.Run("Truncated header is fatal", func(t *testing.T) {
		stream := headerStream(t, 0x07)[:40]

		_, stats, err := dump(t, stream)

		require.ErrorIs(t, err, errs.ErrTruncatedRecord)
		require.Zero(t, stats.Records)
	})
}

func TestDump_LegacyDialect(t *testing.T) {
	t.Run("Legacy header switches the pass dialect", func(t *testing.T) {
		gps := &record.GPSFix{
			Latitude:    51.5,
			Longitude:   -0.12,
			Time:        epoch2015,
			CumDistance: 123.4,
			Unknown:     []byte{1, 2, 3, 4, 5},
		}
		hr := &record.HeartRateSample{HeartRate: 95, Time: epoch2015}

		stream := headerStream(t, 0x05)
		stream = appendRecord(stream, format.TagGPS, gps.Bytes(format.DialectLegacy))
		stream = appendRecord(stream, format.TagHeartRate, hr.Bytes(format.DialectLegacy))

		out, stats, err := dump(t, stream)

		require.NoError(t, err)
		require.Equal(t, 3, stats.Records)
		require.Contains(t, out, "Legacy dialect")
		require.Contains(t, out, "Distance: 123.4 m")
		require.Contains(t, out, "Heart BPM: 95")
	})

	t.Run("WithDialect covers a headerless legacy capture", func(t *testing.T) {
		hr := &record.HeartRateSample{HeartRate: 120, Time: epoch2015}
		stream := appendRecord(nil, format.TagHeartRate, hr.Bytes(format.DialectLegacy))

		var out bytes.Buffer
		stats, err := Dump(bytes.NewReader(stream), &out,
			WithLocation(time.UTC), WithDialect(format.DialectLegacy))

		require.NoError(t, err)
		require.Equal(t, 1, stats.Records)
		require.Contains(t, out.String(), "Heart BPM: 120")
	})
}

func TestDump_UnrecognizedMarkerFailsClosed(t *testing.T) {
	// Marker 0x06 has never been observed; the pass must assume the current
	// dialect rather than guess.
	out, _, err := dump(t, headerStream(t, 0x06))

	require.NoError(t, err)
	require.Contains(t, out, "file format 6 (Current dialect)")
}

func TestDump_MixedStream(t *testing.T) {
	lap := &record.LapMarker{Lap: 1, Activity: format.ActivityRun, Time: epoch2015}
	gps := &record.GPSFix{
		Latitude:    -85.0,
		Longitude:   12.5,
		Speed:       3.25,
		Time:        epoch2015,
		CumDistance: 1200,
		Cycles:      42,
	}
	unknown26 := &record.Unclassified{RecordTag: format.TagUnknown26, Raw: []byte{1, 2, 3, 4, 5, 6}}
	lengths := &record.RecordLengths{}

	stream := headerStream(t, 0x07)
	stream = appendRecord(stream, format.TagRecordLengths, lengths.Bytes(format.DialectCurrent))
	stream = appendRecord(stream, format.TagLap, lap.Bytes(format.DialectCurrent))
	stream = appendRecord(stream, format.TagGPS, gps.Bytes(format.DialectCurrent))
	stream = appendRecord(stream, format.TagUnknown26, unknown26.Bytes(format.DialectCurrent))

	out, stats, err := dump(t, stream)

	require.NoError(t, err)
	require.Equal(t, 5, stats.Records)
	require.Equal(t, int64(len(stream)), stats.Bytes)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 5)
	require.Contains(t, out, "Record lengths (ignored)")
	require.Contains(t, out, "Lap: 1 activity: Run")
	require.Contains(t, out, "Cycles: 42")
	require.Contains(t, out, "Tag 0x26:")
}
