package booking

import (
	"math"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ComputeTotal derives the billed amount for a rental window: the interval
// between start and end on the given date, rounded up to whole hours, times
// the hourly rate. A 2.5 hour window bills as 3 hours.
func ComputeTotal(date, startTime, endTime string, pricePerHour float64) (float64, error) {
	start, err := time.Parse(dateLayout+" "+timeLayout, date+" "+startTime)
	if err != nil {
		return 0, ErrInvalidTime
	}
	end, err := time.Parse(dateLayout+" "+timeLayout, date+" "+endTime)
	if err != nil {
		return 0, ErrInvalidTime
	}

	hours := math.Ceil(end.Sub(start).Hours())
	return hours * pricePerHour, nil
}
