package entity

import "time"

// VisitorLog records at most one anonymous visit per (IP address, calendar
// date). Repeat probes from the same address on the same day are absorbed.
type VisitorLog struct {
	ID        int64
	IPAddress string
	Agent     string
	Date      time.Time // Calendar date of the visit, truncated to midnight UTC.
	CreatedAt time.Time
}
