package config

import "time"

// Speed returns moves per second for the given score.
// Every `Every` points add `Step` moves per second on top of `Base`.
func (s SpeedConfig) Speed(score int) int {
	if score < 0 {
		score = 0
	}
	every := max(1, s.Every)
	return max(1, s.Base) + (score/every)*s.Step
}

// Interval returns the tick period for the given score: floor(1000/speed)
// milliseconds, never faster than MinInterval.
func (s SpeedConfig) Interval(score int) time.Duration {
	ms := 1000 / s.Speed(score)
	return max(s.MinInterval(), time.Duration(ms)*time.Millisecond)
}

