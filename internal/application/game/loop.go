package game

import "time"

// RunFixed calls tick until it returns false. When pad is set each call is
// padded with sleep to last at least frame; a slow tick is not caught up.
// Returns the number of ticks that ran.
func RunFixed(tick func() bool, frame time.Duration, pad bool) int {
	n := 0
	for {
		start := time.Now()
		if !tick() {
			return n
		}
		n++
		if !pad {
			continue
		}
		if elapsed := time.Since(start); elapsed < frame {
			time.Sleep(frame - elapsed)
		}
	}
}
