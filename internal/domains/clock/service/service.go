package service

//go:generate mockgen -source=service.go -destination=../mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"dualzone/infras/otel"
	"dualzone/internal/domains/clock/model/dto"
	"dualzone/shared/constant"
	"dualzone/shared/failure"
	"dualzone/shared/timezone"

	"github.com/rs/zerolog/log"
)

var errNoZones = errors.New("current or storage is required")

type Clock interface {
	Now(ctx context.Context) dto.NowResponse
	Zones(ctx context.Context) dto.ZonesResponse
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.TimeResponse, error)
	UpdateZones(ctx context.Context, req dto.UpdateZonesRequest) (dto.ZonesResponse, error)
}

type clockImpl struct {
	tz   *timezone.Context
	otel otel.Otel
}

func New(tz *timezone.Context, otel otel.Otel) Clock {
	return &clockImpl{
		tz:   tz,
		otel: otel,
	}
}

func (s *clockImpl) scope(ctx context.Context, name string, tz *timezone.Context) otel.Scope {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+name)

	snapshot := tz.Snapshot()
	scope.SetAttributes(map[string]any{
		constant.OtelCurrentAttributeKey: snapshot.Current,
		constant.OtelStorageAttributeKey: snapshot.Storage,
	})

	return scope
}

// zone prefers the request scoped context set by the timezone middleware.
func (s *clockImpl) zone(ctx context.Context) *timezone.Context {
	if tz, ok := timezone.FromContext(ctx); ok {
		return tz
	}

	return s.tz
}

func (s *clockImpl) Now(ctx context.Context) dto.NowResponse {
	tz := s.zone(ctx)

	scope := s.scope(ctx, "Now", tz)
	defer scope.End()

	res := dto.NowResponse{}
	res.Now.FromTime(tz.Now())
	res.Zones.FromSnapshot(tz.Snapshot())

	return res
}

func (s *clockImpl) Zones(ctx context.Context) dto.ZonesResponse {
	tz := s.zone(ctx)

	scope := s.scope(ctx, "Zones", tz)
	defer scope.End()

	res := dto.ZonesResponse{}
	res.FromSnapshot(tz.Snapshot())

	return res
}

// Convert converts RFC3339 values and constructs everything else in the target zone.
func (s *clockImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.TimeResponse, err error) {
	tz := s.zone(ctx)

	scope := s.scope(ctx, "Convert", tz)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTargetAttributeKey, req.Target)

	var to func(timezone.Value, ...timezone.Constructor) (time.Time, error)

	switch req.Target {
	case constant.TargetCurrent:
		to = tz.ToCurrent
	case constant.TargetStorage:
		to = tz.ToStorage
	default:
		return dto.TimeResponse{}, failure.UnknownTarget
	}

	value, constructors := valueOf(req)

	t, err := to(value, constructors...)
	if err != nil {
		log.Error().Err(err).Str("target", req.Target).Msg("failed to convert value")

		return dto.TimeResponse{}, failure.BadRequest(err)
	}

	res.FromTime(t)

	return res, nil
}

func valueOf(req dto.ConvertRequest) (timezone.Value, []timezone.Constructor) {
	if req.Timestamp != nil {
		return timezone.Raw(*req.Timestamp), nil
	}

	if req.Layout != "" {
		return timezone.Raw(req.Value), []timezone.Constructor{layoutConstructor(req.Layout)}
	}

	if t, err := time.Parse(time.RFC3339Nano, req.Value); err == nil {
		return timezone.Instant(t), nil
	}

	return timezone.Raw(req.Value), nil
}

func layoutConstructor(layout string) timezone.Constructor {
	return func(raw any, loc *time.Location) (time.Time, error) {
		value, _ := raw.(string)

		return time.ParseInLocation(layout, value, loc)
	}
}

// UpdateZones replaces the requested zones in one step, so a bad value changes nothing
// and readers never see the new current zone paired with the old storage zone.
func (s *clockImpl) UpdateZones(ctx context.Context, req dto.UpdateZonesRequest) (res dto.ZonesResponse, err error) {
	scope := s.scope(ctx, "UpdateZones", s.tz)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Current == "" && req.Storage == "" {
		return res, failure.BadRequest(errNoZones)
	}

	if err = s.tz.SetZones(input(req.Current), input(req.Storage)); err != nil {
		log.Error().Err(err).Msg("failed to update zones")

		return res, err
	}

	snapshot := s.tz.Snapshot()

	log.Info().
		Str("current", snapshot.Current.String()).
		Str("storage", snapshot.Storage.String()).
		Msg("Timezones updated")

	res.FromSnapshot(snapshot)

	return res, nil
}

// input maps an omitted zone to a nil Input, which SetZones leaves untouched.
func input(name string) timezone.Input {
	if name == "" {
		return nil
	}

	return timezone.Name(name)
}
