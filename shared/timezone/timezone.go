// Package timezone pins wall-clock math to APP_TIMEZONE. Booking windows, no-show cutoffs and the sweeper's
// cron schedule are all read in this location.
package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"

	"reserve/config"

	"github.com/rs/zerolog/log"
)

var (
	mu       sync.RWMutex
	location *time.Location
	loadOnce sync.Once
)

// Load resolves name, falling back to UTC for an empty or unknown zone.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// Set overrides the application location.
func Set(loc *time.Location) {
	loadOnce.Do(func() {})

	mu.Lock()
	defer mu.Unlock()

	location = loc
}

func GetLocation() *time.Location {
	loadOnce.Do(func() {
		loc := Load(config.Get().App.Timezone)

		mu.Lock()
		location = loc
		mu.Unlock()

		log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
	})

	mu.RLock()
	defer mu.RUnlock()

	return location
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value in the application location unless it carries its own offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
