package timezone

//go:generate mockgen -source=clock.go -destination=mocks/clock.go -package=mocks

import "time"

// Clock supplies the ambient instant in whatever zone the runtime uses.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
