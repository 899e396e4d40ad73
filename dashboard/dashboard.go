// Package dashboard selects a view and fills it from the climate components.
// Rendering the returned page (charts, maps, number formatting) is up to the caller.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/ice"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/sealevel"
	"github.com/uyouii/polarview/summary"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
)

type Request struct {
	View View
	// Series is required by ViewTemperature
	Series *model.TemperatureSeries
	// Ice is used by ViewIceSimulation, nil means the slider defaults
	Ice *model.IceProjectionRequest
	// Sites is used by ViewSeaLevelMap, nil means the default sites
	Sites []model.SeaLevelSite
}

type TemperaturePage struct {
	// Preview holds the first PreviewRecordCnt records of the series
	Preview []model.TemperatureRow    `json:"preview"`
	Summary *model.TemperatureSummary `json:"summary"`
	// Trend is nil when fewer than two years carry data
	Trend *model.WarmingTrend `json:"trend,omitempty"`
}

type IcePage struct {
	Controls   Controls                   `json:"controls"`
	Projection *model.IceProjectionResult `json:"projection"`
	// MeltOutYear is the first year offset with no ice left, nil when none.
	// It can lie beyond the requested HorizonYears.
	MeltOutYear *int `json:"melt_out_year,omitempty"`
}

type SummaryPage struct {
	Title    string   `json:"title"`
	Features []string `json:"features"`
}

// Page holds the payload of exactly one view.
type Page struct {
	View        View                 `json:"-"`
	ViewName    string               `json:"view"`
	Temperature *TemperaturePage     `json:"temperature,omitempty"`
	Ice         *IcePage             `json:"ice,omitempty"`
	SeaLevel    *model.SeaLevelLayer `json:"sea_level,omitempty"`
	Summary     *SummaryPage         `json:"summary,omitempty"`
}

type Dashboard struct {
	controls Controls
}

func NewDashboard() *Dashboard {
	return &Dashboard{controls: DefaultControls()}
}

func (d *Dashboard) Controls() Controls {
	return d.controls
}

func (d *Dashboard) Render(ctx context.Context, req Request) (page *Page, err error) {
	logger := utils.GetLogger(ctx)
	logger.Debug("render dashboard view", zap.Stringer("view", req.View))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Render recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Stringer("view", req.View))
			page, err = nil, fmt.Errorf("render %v view: %v", req.View, r)
		}
	}()

	page = &Page{View: req.View, ViewName: req.View.String()}

	switch req.View {
	case ViewTemperature:
		page.Temperature, err = d.renderTemperature(ctx, req.Series)
	case ViewIceSimulation:
		page.Ice, err = d.renderIce(ctx, req.Ice)
	case ViewSeaLevelMap:
		sites := req.Sites
		if sites == nil {
			sites = sealevel.DefaultSites()
		}
		page.SeaLevel, err = sealevel.Layer(ctx, sites)
	case ViewSummary:
		page.Summary = d.renderSummary()
	default:
		err = fmt.Errorf("%w: unknown view %v", common.ErrorInvalidParameter, req.View)
	}

	if err != nil {
		logger.Error("render dashboard view failed", zap.Stringer("view", req.View), zap.Error(err))
		return nil, err
	}
	return page, nil
}

func (d *Dashboard) renderTemperature(ctx context.Context, series *model.TemperatureSeries) (*TemperaturePage, error) {
	logger := utils.GetLogger(ctx)

	if series.IsEmpty() {
		return nil, fmt.Errorf("%w: no temperature series loaded", common.ErrorInsufficientData)
	}

	summaryRes, err := summary.Summarize(ctx, series)
	if err != nil {
		return nil, err
	}

	page := &TemperaturePage{Summary: summaryRes, Preview: preview(series)}

	trend, err := summary.Trend(ctx, series)
	switch {
	case err == nil:
		page.Trend = trend
	case errors.Is(err, common.ErrorInsufficientData):
		logger.Warn("not enough years with data for a trend", zap.Error(err))
	default:
		return nil, err
	}
	return page, nil
}

func preview(series *model.TemperatureSeries) []model.TemperatureRow {
	cnt := min(series.Len(), PreviewRecordCnt)
	rows := make([]model.TemperatureRow, 0, cnt)
	for _, record := range series.Records[:cnt] {
		rows = append(rows, record.Row())
	}
	return rows
}

func (d *Dashboard) renderIce(ctx context.Context, req *model.IceProjectionRequest) (*IcePage, error) {
	projectionReq := model.IceProjectionRequest{
		TemperatureIncrease: d.controls.TemperatureIncrease.Default,
		HorizonYears:        int(d.controls.HorizonYears.Default),
	}
	if req != nil {
		projectionReq = *req
	}

	projection, err := ice.Project(ctx, projectionReq)
	if err != nil {
		return nil, err
	}

	page := &IcePage{Controls: d.controls, Projection: projection}
	if year, ok := ice.MeltOutYear(projectionReq.TemperatureIncrease); ok {
		page.MeltOutYear = &year
	}
	return page, nil
}

func (d *Dashboard) renderSummary() *SummaryPage {
	return &SummaryPage{
		Title: "PolarView",
		Features: []string{
			"Global temperature anomalies for the two most recent years",
			"Ice melt projection from warming and horizon",
			"Sea level rise map",
		},
	}
}
