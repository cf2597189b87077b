package utils

import "time"

// DeltaTimer measures the time between consecutive calls to Next.
type DeltaTimer struct {
	time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	return d.NextAt(time.Now())
}

// NextAt is Next with the current time supplied by the caller.
func (d *DeltaTimer) NextAt(now time.Time) time.Duration {
	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}
