package model

import "fmt"

type Range struct {
	Lower float64
	Upper float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Lower), r.Upper)
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Lower, r.Upper)
}

type IceProjectionRequest struct {
	TemperatureIncrease float64 `json:"temperature_increase"` // °C
	HorizonYears        int     `json:"horizon_years"`
}

type IcePoint struct {
	YearOffset          int     `json:"year_offset"`
	RemainingIcePercent float64 `json:"remaining_ice_percent"`
}

type IceProjectionResult struct {
	Request IceProjectionRequest `json:"request"`
	Points  []IcePoint           `json:"points"`
}

func (r *IceProjectionResult) Last() (IcePoint, bool) {
	if r == nil || len(r.Points) == 0 {
		return IcePoint{}, false
	}
	return r.Points[len(r.Points)-1], true
}

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type SeaLevelSite struct {
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	RiseCm    float64 `json:"sea_lvl"`
}

type SeaLevelMarker struct {
	Site         SeaLevelSite `json:"site"`
	RadiusMeters float64      `json:"radius_m"`
	Color        Color        `json:"color"`
}

type MapViewState struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
}

type SeaLevelLayer struct {
	View    MapViewState     `json:"view"`
	Markers []SeaLevelMarker `json:"markers"`
}
