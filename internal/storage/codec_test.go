package storage

import (
	"testing"
	"time"
)

func TestDecodeTime_Invalid(t *testing.T) {
	if _, err := DecodeTime("yesterday"); err == nil {
		t.Error("DecodeTime should reject a non-RFC3339 value")
	}
}

func TestTimeCodecKeepsOffset(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	original := time.Date(2024, 3, 9, 14, 30, 0, 0, loc)

	decoded, err := DecodeTime(EncodeTime(original))
	if err != nil {
		t.Fatalf("DecodeTime failed: %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("decoded %v, want instant equal to %v", decoded, original)
	}
}

func TestTagsCodec_Empty(t *testing.T) {
	if got := DecodeTags(""); got != nil {
		t.Errorf("DecodeTags(\"\") = %v, want nil", got)
	}
	if got := EncodeTags(nil); got != "" {
		t.Errorf("EncodeTags(nil) = %q, want empty", got)
	}
}

func TestWeekdaysCodec(t *testing.T) {
	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	decoded, err := DecodeWeekdays(EncodeWeekdays(days))
	if err != nil {
		t.Fatalf("DecodeWeekdays failed: %v", err)
	}
	if len(decoded) != 3 || decoded[0] != time.Monday || decoded[2] != time.Friday {
		t.Errorf("decoded = %v", decoded)
	}

	empty, err := DecodeWeekdays("")
	if err != nil || empty != nil {
		t.Errorf("DecodeWeekdays(\"\") = %v, %v", empty, err)
	}

	if _, err := DecodeWeekdays("1,x,3"); err == nil {
		t.Error("DecodeWeekdays should reject non-numeric input")
	}
}
