package middleware

import (
	"net/http"

	"dualzone/config"
	"dualzone/shared/constant"
	"dualzone/shared/timezone"
	"dualzone/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Timezone defines the interface for request timezone middleware
type Timezone interface {
	Timezone(http.Handler) http.Handler
}

type timezoneImpl struct {
	tz     *timezone.Context
	header string
}

// NewTimezoneMiddleware creates a middleware deriving a per-request current zone from tz
func NewTimezoneMiddleware(tz *timezone.Context, cfg *config.Config) Timezone {
	header := cfg.App.TimezoneHeader
	if header == "" {
		header = constant.DefaultTimezoneHeader
	}

	return &timezoneImpl{
		tz:     tz,
		header: header,
	}
}

// Timezone puts a timezone context in the request context. A zone passed in the header or the
// tz query parameter becomes the current zone for this request only; the shared context is
// never mutated.
func (m *timezoneImpl) Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tz := m.tz

		if requested := m.requested(r); requested != "" {
			derived, err := m.tz.WithCurrent(timezone.Name(requested))
			if err != nil {
				log.Warn().Err(err).Str("timezone", requested).Msg("Rejected request timezone")
				response.WithError(w, err)

				return
			}

			tz = derived
		}

		next.ServeHTTP(w, r.WithContext(timezone.NewContext(r.Context(), tz)))
	})
}

func (m *timezoneImpl) requested(r *http.Request) string {
	if value := r.Header.Get(m.header); value != "" {
		return value
	}

	return r.URL.Query().Get(constant.RequestParamTimezone)
}
