package di

import (
	"dualzone/config"
	"dualzone/shared/timezone"
)

// ProvideTimezone builds the application's timezone context from APP_TIMEZONE and
// APP_STORAGE_TIMEZONE. An unresolvable zone stops startup.
func ProvideTimezone(cfg *config.Config) (*timezone.Context, error) {
	tz, err := timezone.New(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	if err := tz.SetStorage(timezone.Name(cfg.StorageZone())); err != nil {
		return nil, err
	}

	return tz, nil
}
