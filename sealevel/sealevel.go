package sealevel

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
)

const (
	RadiusPerUnit = 40000.0 // meters of marker radius per cm of rise
	GreenPerUnit  = 8.0
	MaxChannel    = 255.0
)

var (
	LatitudeRange  = model.Range{Lower: -90, Upper: 90}
	LongitudeRange = model.Range{Lower: -180, Upper: 180}

	DefaultView = model.MapViewState{Latitude: 20, Longitude: 0, Zoom: 1, Pitch: 30}
)

func DefaultSites() []model.SeaLevelSite {
	return []model.SeaLevelSite{
		{Country: "Thailand", Latitude: 13.7, Longitude: 100.5, RiseCm: 12},
		{Country: "USA", Latitude: 40.7, Longitude: -74.0, RiseCm: 18},
		{Country: "Bangladesh", Latitude: 23.7, Longitude: 90.4, RiseCm: 25},
		{Country: "Netherlands", Latitude: 52.3, Longitude: 4.9, RiseCm: 30},
		{Country: "Japan", Latitude: 35.7, Longitude: 139.7, RiseCm: 10},
	}
}

// MarkerColor shades from red to yellow as the rise grows.
func MarkerColor(riseCm float64) model.Color {
	green := model.Range{Lower: 0, Upper: MaxChannel}.Clamp(riseCm * GreenPerUnit)
	return model.Color{R: uint8(MaxChannel), G: uint8(math.Round(green)), B: 0}
}

func Marker(site model.SeaLevelSite) (model.SeaLevelMarker, error) {
	if !LatitudeRange.Contains(site.Latitude) || !LongitudeRange.Contains(site.Longitude) {
		return model.SeaLevelMarker{}, fmt.Errorf("%w: %v coordinates (%v, %v)",
			common.ErrorInvalidParameter, site.Country, site.Latitude, site.Longitude)
	}
	if !utils.IsFinite(site.RiseCm) || site.RiseCm < 0 {
		return model.SeaLevelMarker{}, fmt.Errorf("%w: %v sea level rise %v",
			common.ErrorInvalidParameter, site.Country, site.RiseCm)
	}
	return model.SeaLevelMarker{
		Site:         site,
		RadiusMeters: site.RiseCm * RadiusPerUnit,
		Color:        MarkerColor(site.RiseCm),
	}, nil
}

func Layer(ctx context.Context, sites []model.SeaLevelSite) (*model.SeaLevelLayer, error) {
	logger := utils.GetLogger(ctx)

	markers := make([]model.SeaLevelMarker, 0, len(sites))
	for _, site := range sites {
		marker, err := Marker(site)
		if err != nil {
			logger.Error("build sea level marker failed", zap.Error(err))
			return nil, err
		}
		markers = append(markers, marker)
	}

	logger.Debug("build sea level layer success", zap.Int("markerCnt", len(markers)))
	return &model.SeaLevelLayer{View: DefaultView, Markers: markers}, nil
}
