package timeutil

import "time"

// DateKeyLayout is the 8-digit date key the stats provider schedules by.
const DateKeyLayout = "20060102"

// scheduleCutoverHour is the ET hour before which a run still belongs to the
// previous day's slate (late games finish after midnight ET).
const scheduleCutoverHour = 6

var easternTime = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}

// APIDateKey returns the provider date key for the given instant: the current
// date in US Eastern time, rolled back one day before 06:00 ET.
func APIDateKey(now time.Time) string {
	et := now.In(easternTime)
	if et.Hour() < scheduleCutoverHour {
		et = et.AddDate(0, 0, -1)
	}
	return et.Format(DateKeyLayout)
}
