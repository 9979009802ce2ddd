package utils

import "time"

// CampusLocation resolves the campus timezone from an offset in hours.
// Device and server clocks must agree on a single zone; schedules are
// stored as local times of day.
func CampusLocation(offsetHours int) *time.Location {
	return time.FixedZone("CAMPUS", offsetHours*60*60)
}
