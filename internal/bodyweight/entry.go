package bodyweight

import "time"

// Entry is one body-weight measurement.
type Entry struct {
	ID     int       `json:"id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Unit   string    `json:"unit"`
}
