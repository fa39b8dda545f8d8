package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrWorkingDaysNotSet   = errors.New("monthly working days not set for this period")
	ErrRegularDaysExceeded = errors.New("regular days worked cannot exceed total working days in the month")
)
