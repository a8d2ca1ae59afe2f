package lid

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

type throttled struct {
	Sensor
	limiter *rate.Limiter
}

// Throttle returns a Sensor that queries s at most once per interval and
// reports an open lid in between, so a closed lid is reported once per
// query. The first call always queries s. An interval of zero returns s
// itself.
func Throttle(s Sensor, interval time.Duration) Sensor {
	if interval <= 0 {
		return s
	}
	return &throttled{
		Sensor:  s,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (t *throttled) Closed(ctx context.Context) (bool, error) {
	if !t.limiter.Allow() {
		return false, nil
	}
	return t.Sensor.Closed(ctx)
}
