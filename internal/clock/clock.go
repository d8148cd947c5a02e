package clock

import (
	"sync"
	"time"
)

// Clock returns the current instant. Records are always stamped in UTC.
type Clock func() time.Time

func UTC() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock starting at t and advancing by step on every call.
func Fixed(t time.Time, step time.Duration) Clock {
	var mu sync.Mutex
	cur := t.UTC()
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := cur
		cur = cur.Add(step)
		return now
	}
}
