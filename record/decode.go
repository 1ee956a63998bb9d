package record

import (
	"fmt"

	"github.com/arloliu/ttbin/format"
)

// Decode dispatches a payload to the typed decoder for its tag.
//
// The payload must already be exactly the length PayloadSize prescribes for
// (tag, d); the cursor guarantees that for every classified tag. Tags without
// a known layout return an error, they never reach a decoder.
func Decode(tag format.Tag, data []byte, d format.Dialect) (Record, error) {
	var rec interface {
		Record
		Parse([]byte, format.Dialect) error
	}

	switch tag {
	case format.TagHeader:
		rec = &Header{}
	case format.TagRecordLengths:
		rec = &RecordLengths{}
	case format.TagLap:
		rec = &LapMarker{}
	case format.TagGPS:
		rec = &GPSFix{}
	case format.TagStatus:
		rec = &StatusRecord{}
	case format.TagHeartRate:
		rec = &HeartRateSample{}
	case format.TagSummary:
		rec = &ActivitySummary{}
	case format.TagTreadmill:
		rec = &TreadmillSample{}
	case format.TagSwim:
		rec = &SwimSample{}
	case format.TagTimestamped35:
		rec = &Timestamped35{}
	case format.TagUnknown26, format.TagUnknown30, format.TagUnknown37:
		rec = &Unclassified{RecordTag: tag}
	default:
		return nil, fmt.Errorf("no decoder for tag %s", tag)
	}

	if err := rec.Parse(data, d); err != nil {
		return nil, err
	}

	return rec, nil
}
