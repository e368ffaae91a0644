package domain

// DayKey is the short weekday token used to select a day bucket
// (UI tabs use these, the backend stores the long-form name).
type DayKey string

const (
	DayMon DayKey = "mon"
	DayTue DayKey = "tue"
	DayWed DayKey = "wed"
	DayThu DayKey = "thu"
	DayFri DayKey = "fri"
	DaySat DayKey = "sat"
)

var dayKeys = map[string]DayKey{
	"monday":    DayMon,
	"tuesday":   DayTue,
	"wednesday": DayWed,
	"thursday":  DayThu,
	"friday":    DayFri,
	"saturday":  DaySat,
}

// DayKeyFor maps a long-form weekday name to its DayKey. The second
// return is false for anything outside the six recognized conference
// days; such talks stay out of every day bucket.
func DayKeyFor(day string) (DayKey, bool) {
	key, ok := dayKeys[day]
	return key, ok
}

// DayKeys returns the conference days in calendar order.
func DayKeys() []DayKey {
	return []DayKey{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat}
}

type Speaker struct {
	ID    string
	Name  string
	Photo *string
}

type Talk struct {
	ID          string
	Day         string // long-form weekday (e.g. "monday")
	Time        string // "HH:MM", sort key within a day
	Title       string
	Description *string
	Site        *string
	Link        *string
	Speaker     *Speaker // nil until the speaker is confirmed
}

// Scheduled reports whether the talk belongs to a recognized
// conference day.
func (t Talk) Scheduled() bool {
	_, ok := DayKeyFor(t.Day)
	return ok
}
