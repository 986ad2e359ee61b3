package domain

import "time"

// DateLayout is the canonical wire and storage format for metric dates.
const DateLayout = "2006-01-02"

// HealthMetrics is one user's measurements for a single day. At most one
// record exists per (UserID, Date) pair; repeated saves for the same day
// overwrite the scalar fields in place.
//
// Measurement fields are pointers: a nil field means "not recorded", which
// is distinct from a recorded zero.
type HealthMetrics struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Date          string    `json:"date"`
	WaterIntake   *int      `json:"waterIntake"`
	SleepDuration *int      `json:"sleepDuration"`
	Steps         *int      `json:"steps"`
	HeartRate     *int      `json:"heartRate"`
	SystolicBP    *int      `json:"systolicBP"`
	DiastolicBP   *int      `json:"diastolicBP"`
	Weight        *float64  `json:"weight"`
	Mood          string    `json:"mood"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Today returns the server's current local date in DateLayout form.
// Saves always target the caller's "today", never an arbitrary date.
func Today() string {
	return time.Now().Format(DateLayout)
}
