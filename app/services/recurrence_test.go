package services

import (
	"errors"
	"testing"
	"time"

	"club-manager/app/models"
)

func date(y, m, d int) models.CivilDate {
	return models.NewCivilDate(y, time.Month(m), d)
}

func TestExpandDatesTueThu(t *testing.T) {
	// 2024-01-01 is a Monday; weekdays 1 and 3 are Tuesday and Thursday
	start := date(2024, 1, 1)
	end := date(2024, 1, 14)

	dates, err := ExpandDates(start, end, []int{1, 3})
	if err != nil {
		t.Fatalf("ExpandDates: %v", err)
	}

	want := []string{"2024-01-02", "2024-01-04", "2024-01-09", "2024-01-11"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(dates), dates)
	}
	for i, d := range dates {
		if got := d.Format("2006-01-02"); got != want[i] {
			t.Fatalf("date %d: expected %s, got %s", i, want[i], got)
		}
	}
}

func TestExpandDatesInvertedWindow(t *testing.T) {
	dates, err := ExpandDates(date(2024, 2, 1), date(2024, 1, 1), []int{0, 1, 2})
	if err != nil {
		t.Fatalf("inverted window must not error: %v", err)
	}
	if len(dates) != 0 {
		t.Fatalf("expected no dates, got %d", len(dates))
	}
}

func TestExpandDatesEmptyWeekdaySet(t *testing.T) {
	dates, err := ExpandDates(date(2024, 1, 1), date(2024, 12, 31), nil)
	if err != nil {
		t.Fatalf("empty weekday set must not error: %v", err)
	}
	if len(dates) != 0 {
		t.Fatalf("expected no dates, got %d", len(dates))
	}
}

func TestExpandDatesInvalidWeekday(t *testing.T) {
	for _, wd := range []int{-1, 7, 42} {
		_, err := ExpandDates(date(2024, 1, 1), date(2024, 1, 31), []int{1, wd})
		if !errors.Is(err, ErrInvalidWeekday) {
			t.Fatalf("weekday %d: expected ErrInvalidWeekday, got %v", wd, err)
		}
	}
}

func TestExpandDatesMarchMondaysAndSaturdays(t *testing.T) {
	// March 2024 has 4 Mondays (4, 11, 18, 25) and 5 Saturdays (2, 9, 16, 23, 30)
	dates, err := ExpandDates(date(2024, 3, 1), date(2024, 3, 31), []int{0, 5})
	if err != nil {
		t.Fatalf("ExpandDates: %v", err)
	}
	if len(dates) != 9 {
		t.Fatalf("expected 9 dates, got %d: %v", len(dates), dates)
	}
	for _, d := range dates {
		if wd := d.Weekday(); wd != 0 && wd != 5 {
			t.Fatalf("date %s has weekday %d outside the set", d.Format("2006-01-02"), wd)
		}
	}
	if first := dates[0].Format("2006-01-02"); first != "2024-03-02" {
		t.Fatalf("expected first date 2024-03-02, got %s", first)
	}
	if last := dates[len(dates)-1].Format("2006-01-02"); last != "2024-03-30" {
		t.Fatalf("expected last date 2024-03-30, got %s", last)
	}
}

func TestExpandDatesSingleDayWindow(t *testing.T) {
	// Window of one day matching the set yields exactly that day
	d := date(2024, 1, 2) // Tuesday
	dates, err := ExpandDates(d, d, []int{1})
	if err != nil {
		t.Fatalf("ExpandDates: %v", err)
	}
	if len(dates) != 1 || dates[0].Format("2006-01-02") != "2024-01-02" {
		t.Fatalf("expected exactly 2024-01-02, got %v", dates)
	}
}

func TestMissingDatesSkipsExisting(t *testing.T) {
	wanted, err := ExpandDates(date(2024, 1, 1), date(2024, 1, 14), []int{1, 3})
	if err != nil {
		t.Fatalf("ExpandDates: %v", err)
	}

	existing := map[string]bool{
		"2024-01-02": true,
		"2024-01-09": true,
	}

	missing := missingDates(wanted, existing)
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing dates, got %d: %v", len(missing), missing)
	}
	if missing[0].Format("2006-01-02") != "2024-01-04" || missing[1].Format("2006-01-02") != "2024-01-11" {
		t.Fatalf("unexpected missing dates: %v", missing)
	}

	// A second run with all dates present creates nothing
	for _, d := range wanted {
		existing[d.Format("2006-01-02")] = true
	}
	if again := missingDates(wanted, existing); len(again) != 0 {
		t.Fatalf("expected no missing dates on rerun, got %v", again)
	}
}
