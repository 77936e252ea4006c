package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCivilDateJSONRoundTrip(t *testing.T) {
	d := NewCivilDate(2024, time.March, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-05"` {
		t.Fatalf("expected \"2024-03-05\", got %s", data)
	}

	var parsed CivilDate
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Time.Equal(d.Time) {
		t.Fatalf("round trip changed date: %v -> %v", d.Time, parsed.Time)
	}
}

func TestCivilDateUnmarshalNull(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var d CivilDate
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !d.IsZero() {
			t.Fatalf("expected zero date for %s, got %v", raw, d.Time)
		}
	}
}

func TestCivilDateUnmarshalRejectsGarbage(t *testing.T) {
	var d CivilDate
	if err := json.Unmarshal([]byte(`"05/03/2024"`), &d); err == nil {
		t.Fatal("expected error for non YYYY-MM-DD input")
	}
}

func TestCivilDateWeekdayMondayZero(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
	for i := 0; i < 7; i++ {
		d := NewCivilDate(2024, time.January, 1+i)
		if got := d.Weekday(); got != i {
			t.Fatalf("2024-01-%02d: expected weekday %d, got %d", 1+i, i, got)
		}
	}
}

func TestCivilDateScanTruncatesTime(t *testing.T) {
	var d CivilDate
	if err := d.Scan(time.Date(2024, time.June, 15, 18, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := NewCivilDate(2024, time.June, 15)
	if !d.Time.Equal(want.Time) {
		t.Fatalf("expected %v, got %v", want.Time, d.Time)
	}
}

func TestCivilDateAddDaysCrossesMonth(t *testing.T) {
	d := NewCivilDate(2024, time.January, 30).AddDays(3)
	want := NewCivilDate(2024, time.February, 2)
	if !d.Time.Equal(want.Time) {
		t.Fatalf("expected %v, got %v", want.Time, d.Time)
	}
}
