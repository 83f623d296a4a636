package dto

import (
	"time"

	"dualzone/shared/constant"
	"dualzone/shared/timezone"
)

type ConvertRequest struct {
	Value     string `json:"value" validate:"required_without=Timestamp"`
	Timestamp *int64 `json:"timestamp" validate:"required_without=Value"`
	Layout    string `json:"layout"`
	Target    string `json:"target" validate:"required,oneof=current storage"`
}

type UpdateZonesRequest struct {
	Current string `json:"current" validate:"omitempty,tz"`
	Storage string `json:"storage" validate:"omitempty,tz"`
}

type ZonesResponse struct {
	Current string `json:"current"`
	Storage string `json:"storage"`
}

func (r *ZonesResponse) FromSnapshot(snapshot timezone.Snapshot) {
	r.Current = snapshot.Current.String()
	r.Storage = snapshot.Storage.String()
}

type TimeResponse struct {
	Value    string `json:"value"`
	Timezone string `json:"timezone"`
	Offset   string `json:"offset"`
	Unix     int64  `json:"unix"`
}

func (r *TimeResponse) FromTime(t time.Time) {
	_, offset := t.Zone()

	r.Value = t.Format(constant.DateFormat)
	r.Timezone = t.Location().String()
	r.Offset = timezone.FormatOffset(offset)
	r.Unix = t.Unix()
}

type NowResponse struct {
	Now   TimeResponse  `json:"now"`
	Zones ZonesResponse `json:"zones"`
}
