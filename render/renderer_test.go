package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ttbin/format"
	"github.com/arloliu/ttbin/record"
)

// epoch2015 is 2015-01-01 00:00:00 UTC.
const epoch2015 = 1420070400

func newUTCRenderer(d format.Dialect) *Renderer {
	return New(d).WithLocation(time.UTC)
}

func TestRenderer_Header(t *testing.T) {
	h := &record.Header{
		FormatMarker: 0x07,
		Version:      [4]byte{1, 8, 42, 0},
		Timestamp:    epoch2015,
	}

	out := newUTCRenderer(format.DialectCurrent).Render(h)
	require.Equal(t, "[2015-01-01 00:00:00] Header: file format 7 (Current dialect), watch version (1,8,42,0)\n", out)
}

func TestRenderer_GPS(t *testing.T) {
	t.Run("Fix renders position in local time", func(t *testing.T) {
		g := &record.GPSFix{
			Latitude:    -85.0,
			Longitude:   12.5,
			Heading:     90.0,
			Speed:       3.25,
			Time:        epoch2015,
			Calories:    100,
			IncDistance: 5.5,
			CumDistance: 1200.0,
			Cycles:      42,
		}

		out := newUTCRenderer(format.DialectCurrent).Render(g)
		require.Contains(t, out, "[2015-01-01 00:00:00] GPS:")
		require.Contains(t, out, "Lat: -85.000000")
		require.Contains(t, out, "Long: 12.500000")
		require.Contains(t, out, "Speed: 3.25 m/s")
		require.Contains(t, out, "Cycles: 42")
		require.Contains(t, out, "Heading 90.00")
		require.True(t, strings.HasPrefix(out, "\n"))
		require.True(t, strings.HasSuffix(out, "\n\n"))
	})

	t.Run("Local zone shifts GPS timestamps only", func(t *testing.T) {
		zone := time.FixedZone("UTC+2", 2*3600)
		g := &record.GPSFix{Time: epoch2015, Latitude: 1, Longitude: 2}
		hr := &record.HeartRateSample{HeartRate: 150, Time: epoch2015}

		r := New(format.DialectCurrent).WithLocation(zone)
		require.Contains(t, r.Render(g), "[2015-01-01 02:00:00]")
		require.Contains(t, r.Render(hr), "[2015-01-01 00:00:00]")
	})

	t.Run("No fix renders nothing but the lock message", func(t *testing.T) {
		g := &record.GPSFix{Time: record.NoFixTime}

		out := newUTCRenderer(format.DialectCurrent).Render(g)
		require.Equal(t, "\nNo GPS lock\n\n", out)
	})

	t.Run("Legacy dialect renders the deci-meter distance", func(t *testing.T) {
		g := &record.GPSFix{
			Time:        epoch2015,
			CumDistance: 123.4,
			Unknown:     []byte{0xAB, 0xCD, 0xEF, 0x01, 0x02},
		}

		out := newUTCRenderer(format.DialectLegacy).Render(g)
		require.Contains(t, out, "Distance: 123.4 m")
		require.Contains(t, out, "Unclassified tail:")
		require.Contains(t, out, " AB CD EF 01 02")
		require.NotContains(t, out, "Cycles")
	})
}

func TestRenderer_Samples(t *testing.T) {
	r := newUTCRenderer(format.DialectCurrent)

	t.Run("Heart rate", func(t *testing.T) {
		out := r.Render(&record.HeartRateSample{HeartRate: 162, Time: epoch2015})
		require.Equal(t, "[2015-01-01 00:00:00] Heart BPM: 162\n", out)
	})

	t.Run("Lap", func(t *testing.T) {
		out := r.Render(&record.LapMarker{Lap: 3, Activity: format.ActivityCycle, Time: epoch2015})
		require.Equal(t, "[2015-01-01 00:00:00] Lap: 3 activity: Cycle\n", out)
	})

	t.Run("Lap with unmapped activity code", func(t *testing.T) {
		out := r.Render(&record.LapMarker{Lap: 1, Activity: 9, Time: epoch2015})
		require.Contains(t, out, "activity: Type 9")
	})

	t.Run("Summary", func(t *testing.T) {
		out := r.Render(&record.ActivitySummary{
			Activity: format.ActivityTreadmill,
			Distance: 5000,
			Duration: 1800,
			Calories: 320,
		})
		require.Equal(t, "Summary:\n  Activity type: Treadmill\n  Distance: 5000 m\n  Duration: 1800 s\n  Calories: 320\n", out)
	})

	t.Run("Treadmill", func(t *testing.T) {
		out := r.Render(&record.TreadmillSample{Time: epoch2015, Distance: 412.75, Calories: 88, Steps: 1200})
		require.Equal(t, "[2015-01-01 00:00:00] Treadmill: Distance: 412.75 m  Calories: 88  Steps: 1200\n", out)
	})

	t.Run("Swim", func(t *testing.T) {
		s := &record.SwimSample{Time: epoch2015, Calories: 55}
		out := r.Render(s)
		require.Contains(t, out, "[2015-01-01 00:00:00] Swim: Calories: 55\n")
		require.Contains(t, out, " 00 00")
	})

	t.Run("Tag 0x35 uses local time", func(t *testing.T) {
		zone := time.FixedZone("UTC-3", -3*3600)
		rec := &record.Timestamped35{Unknown: [2]byte{0x0A, 0x0B}, Time: epoch2015}

		out := New(format.DialectCurrent).WithLocation(zone).Render(rec)
		require.Equal(t, "Tag 0x35: 0A 0B  2014-12-31 21:00:00\n", out)
	})
}

func TestRenderer_Unclassified(t *testing.T) {
	r := newUTCRenderer(format.DialectCurrent)

	t.Run("Hex dump with digest", func(t *testing.T) {
		u := &record.Unclassified{RecordTag: format.TagUnknown26, Raw: []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}}

		out := r.Render(u)
		require.Contains(t, out, "Tag 0x26:")
		require.Contains(t, out, "xxh64=")
		require.Contains(t, out, " DE AD BE EF 00 01\n")
	})

	t.Run("Identical payloads share a digest", func(t *testing.T) {
		a := r.Render(&record.Unclassified{RecordTag: format.TagUnknown30, Raw: []byte{1, 2}})
		b := r.Render(&record.Unclassified{RecordTag: format.TagUnknown30, Raw: []byte{1, 2}})
		require.Equal(t, a, b)
	})

	t.Run("Status record leads with its decoded words", func(t *testing.T) {
		s := &record.StatusRecord{U1: 0x0102, U2: 0x0304, U3: 0x05, Raw: make([]byte, 19)}

		out := r.Render(s)
		require.Contains(t, out, "Tag 0x23: 0102  0304  05")
	})
}

func TestRenderer_UnknownTag(t *testing.T) {
	out := newUTCRenderer(format.DialectCurrent).UnknownTag(format.Tag(0x99), 113)
	require.Equal(t, "Unknown tag 0x99 at offset 113\n", out)
}

func TestHexDump(t *testing.T) {
	t.Run("Empty payload dumps nothing", func(t *testing.T) {
		require.Empty(t, HexDump(nil))
	})

	t.Run("Wraps at 32 bytes", func(t *testing.T) {
		data := make([]byte, 40)
		out := HexDump(data)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, strings.Repeat(" 00", 32), lines[0])
		require.Equal(t, strings.Repeat(" 00", 8), lines[1])
	})

	t.Run("Exact multiple has no trailing short line", func(t *testing.T) {
		out := HexDump(make([]byte, 32))
		require.Equal(t, strings.Repeat(" 00", 32)+"\n", out)
	})
}
