package game

import "time"

// Delays holds the per-tick suspension bounds. Min is the fastest pace
// (Hard), Max the slowest (Easy); Medium sits in between.
type Delays struct {
	Min    time.Duration
	Medium time.Duration
	Max    time.Duration
}

// DefaultDelays returns the stock pacing: 30, 20 and 12 ticks per second.
func DefaultDelays() Delays {
	return Delays{
		Min:    33333 * time.Microsecond,
		Medium: 50000 * time.Microsecond,
		Max:    83333 * time.Microsecond,
	}
}

// For computes the tick delay for a difficulty at the given progress.
// Easy, Medium and Hard are constant. Incremental interpolates linearly
// from Max at progress 0 down to Min at progress 1, so it is monotonically
// non-increasing as the board fills. Progress outside [0, 1] is clamped.
func (d Delays) For(diff Difficulty, progress float64) time.Duration {
	switch diff {
	case Easy:
		return d.Max
	case Medium:
		return d.Medium
	case Hard:
		return d.Min
	default:
		if progress < 0 {
			progress = 0
		} else if progress > 1 {
			progress = 1
		}
		return d.Max - time.Duration(float64(d.Max-d.Min)*progress)
	}
}
