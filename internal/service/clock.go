package service

import "time"

// clock returns the current time.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
