package timezone

import (
	"sync/atomic"
	"time"
	_ "time/tzdata" // embedded IANA database

	"github.com/rs/zerolog/log"
)

type zones struct {
	current *time.Location
	storage *time.Location
}

// Snapshot is the pair of zones read at a single moment.
type Snapshot struct {
	Current *time.Location
	Storage *time.Location
}

// Context holds the current and storage timezones. It is safe for concurrent use:
// both zones are swapped together, so readers never see a half applied update.
type Context struct {
	zones       atomic.Pointer[zones]
	clock       Clock
	constructor Constructor
}

// Option configures a Context at creation.
type Option func(*Context)

// WithClock replaces the system clock used by Now.
func WithClock(clock Clock) Option {
	return func(c *Context) {
		c.clock = clock
	}
}

// WithConstructor replaces Create as the fallback constructor for raw values.
func WithConstructor(constructor Constructor) Option {
	return func(c *Context) {
		c.constructor = constructor
	}
}

// New returns a Context with both zones set to defaultIdentifier.
func New(defaultIdentifier string, opts ...Option) (*Context, error) {
	loc, err := Parse(defaultIdentifier)
	if err != nil {
		return nil, err
	}

	c := &Context{
		clock:       SystemClock{},
		constructor: Create,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.zones.Store(&zones{current: loc, storage: loc})

	log.Info().
		Str("timezone", defaultIdentifier).
		Str("location", loc.String()).
		Msg("Timezone context initialized")

	return c, nil
}

// WithCurrent returns a new Context sharing the storage zone, clock and constructor of c
// but with its own current zone. c is not modified.
func (c *Context) WithCurrent(in Input) (*Context, error) {
	loc, err := Resolve(in)
	if err != nil {
		return nil, err
	}

	derived := &Context{
		clock:       c.clock,
		constructor: c.constructor,
	}
	derived.zones.Store(&zones{current: loc, storage: c.Storage()})

	return derived, nil
}

// Set is an alias of SetCurrent.
func (c *Context) Set(in Input) error {
	return c.SetCurrent(in)
}

// SetCurrent replaces the current zone. On error the previous zone is kept.
func (c *Context) SetCurrent(in Input) error {
	loc, err := Resolve(in)
	if err != nil {
		return err
	}

	c.update(func(z zones) zones {
		z.current = loc

		return z
	})

	log.Debug().Str("current", loc.String()).Msg("Current timezone changed")

	return nil
}

// Current returns the current zone.
func (c *Context) Current() *time.Location {
	return c.zones.Load().current
}

// SetStorage replaces the storage zone. On error the previous zone is kept.
func (c *Context) SetStorage(in Input) error {
	loc, err := Resolve(in)
	if err != nil {
		return err
	}

	c.update(func(z zones) zones {
		z.storage = loc

		return z
	})

	log.Debug().Str("storage", loc.String()).Msg("Storage timezone changed")

	return nil
}

// Storage returns the storage zone.
func (c *Context) Storage() *time.Location {
	return c.zones.Load().storage
}

// SetZones resolves both inputs and replaces both zones in one step. A nil input
// keeps that zone. If either input fails to resolve, neither zone changes.
func (c *Context) SetZones(current, storage Input) error {
	var next zones

	if current != nil {
		loc, err := Resolve(current)
		if err != nil {
			return err
		}

		next.current = loc
	}

	if storage != nil {
		loc, err := Resolve(storage)
		if err != nil {
			return err
		}

		next.storage = loc
	}

	c.update(func(z zones) zones {
		if next.current != nil {
			z.current = next.current
		}

		if next.storage != nil {
			z.storage = next.storage
		}

		return z
	})

	log.Debug().
		Str("current", c.Current().String()).
		Str("storage", c.Storage().String()).
		Msg("Timezones changed")

	return nil
}

// Snapshot returns both zones as read at a single point in time.
func (c *Context) Snapshot() Snapshot {
	z := c.zones.Load()

	return Snapshot{Current: z.current, Storage: z.storage}
}

// Now returns the clock's instant in the current zone.
func (c *Context) Now() time.Time {
	return c.clock.Now().In(c.Current())
}

// ToCurrent converts an Instant to the current zone, or builds a Raw value anchored in it.
// A given constructor is called with exactly (raw, current) and its result returned as is.
func (c *Context) ToCurrent(v Value, constructor ...Constructor) (time.Time, error) {
	return c.to(c.Current(), v, constructor)
}

// ToStorage mirrors ToCurrent for the storage zone.
func (c *Context) ToStorage(v Value, constructor ...Constructor) (time.Time, error) {
	return c.to(c.Storage(), v, constructor)
}

// InCurrent converts t to the current zone.
func (c *Context) InCurrent(t time.Time) time.Time {
	return t.In(c.Current())
}

// InStorage converts t to the storage zone.
func (c *Context) InStorage(t time.Time) time.Time {
	return t.In(c.Storage())
}

// Parse parses a time string in the current zone
func (c *Context) Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, c.Current())
}

// ParseStorage parses a time string in the storage zone
func (c *Context) ParseStorage(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, c.Storage())
}

// Format formats a time in the current zone
func (c *Context) Format(t time.Time, layout string) string {
	return c.InCurrent(t).Format(layout)
}

func (c *Context) to(loc *time.Location, v Value, constructors []Constructor) (time.Time, error) {
	switch v := v.(type) {
	case instant:
		return v.t.In(loc), nil
	case raw:
		return c.pick(constructors)(v.v, loc)
	default:
		return time.Time{}, ErrNilValue
	}
}

func (c *Context) pick(constructors []Constructor) Constructor {
	for _, constructor := range constructors {
		if constructor != nil {
			return constructor
		}
	}

	if c.constructor != nil {
		return c.constructor
	}

	return Create
}

func (c *Context) update(fn func(zones) zones) {
	for {
		old := c.zones.Load()
		next := fn(*old)

		if c.zones.CompareAndSwap(old, &next) {
			return
		}
	}
}
