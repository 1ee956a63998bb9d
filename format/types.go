package format

import "fmt"

type (
	Tag          uint8
	Dialect      uint8
	ActivityType uint32
)

// Record tags observed in ttbin captures. One tag byte precedes each record;
// the payload length is fixed per (tag, dialect) pair and carries no length
// prefix of its own.
const (
	TagHeader        Tag = 0x20 // TagHeader marks the file/session header record.
	TagRecordLengths Tag = 0x16 // TagRecordLengths marks the record-length table.
	TagLap           Tag = 0x21 // TagLap marks a lap boundary event.
	TagGPS           Tag = 0x22 // TagGPS marks one location sample.
	TagStatus        Tag = 0x23 // TagStatus is only partially understood, hex-dumped.
	TagHeartRate     Tag = 0x25 // TagHeartRate marks one pulse reading.
	TagUnknown26     Tag = 0x26 // TagUnknown26 is unclassified, hex-dumped.
	TagSummary       Tag = 0x27 // TagSummary marks end-of-activity totals.
	TagUnknown30     Tag = 0x30 // TagUnknown30 is unclassified, hex-dumped.
	TagTreadmill     Tag = 0x32 // TagTreadmill marks an indoor run/walk sample.
	TagSwim          Tag = 0x34 // TagSwim marks a swim segment.
	TagTimestamped35 Tag = 0x35 // TagTimestamped35 is unclassified but carries a timestamp.
	TagUnknown37     Tag = 0x37 // TagUnknown37 is unclassified, single byte.
)

const (
	// DialectLegacy is the older observed schema revision (format marker 0x05).
	DialectLegacy Dialect = 0x05
	// DialectCurrent is the newer observed schema revision (format marker 0x07).
	DialectCurrent Dialect = 0x07
)

// Activity codes as reported by the watch.
const (
	ActivityRun       ActivityType = 0
	ActivityCycle     ActivityType = 1
	ActivitySwim      ActivityType = 2
	ActivityTreadmill ActivityType = 7
)

// DetectDialect maps a header format marker byte to its dialect.
//
// Only markers 0x05 and 0x07 have been observed in captures. Any other marker
// decodes as the current dialect; this is a fail-closed assumption, not an
// inference.
func DetectDialect(marker byte) Dialect {
	if Dialect(marker) == DialectLegacy {
		return DialectLegacy
	}

	return DialectCurrent
}

func (t Tag) String() string {
	return fmt.Sprintf("0x%02X", uint8(t))
}

func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return "Legacy"
	case DialectCurrent:
		return "Current"
	default:
		return "Unknown"
	}
}

func (a ActivityType) String() string {
	switch a {
	case ActivityRun:
		return "Run"
	case ActivityCycle:
		return "Cycle"
	case ActivitySwim:
		return "Swim"
	case ActivityTreadmill:
		return "Treadmill"
	default:
		return fmt.Sprintf("Type %d", uint32(a))
	}
}
