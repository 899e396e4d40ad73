package summary

import (
	"context"
	"fmt"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trend fits annual mean against year by least squares, years without
// data are left out of the fit.
func Trend(ctx context.Context, series *model.TemperatureSeries) (*model.WarmingTrend, error) {
	logger := utils.GetLogger(ctx)

	if err := checkShape(series); err != nil {
		logger.Error("malformed temperature series", zap.Error(err))
		return nil, err
	}

	years, means := []float64{}, []float64{}
	for _, annualMean := range MonthlyMeans(series) {
		value, ok := annualMean.Value()
		if !ok {
			continue
		}
		years = append(years, float64(annualMean.Year))
		means = append(means, value)
	}

	if len(years) < MinTrendYearCnt || floats.Min(years) == floats.Max(years) {
		logger.Error("years with data too little, skip trend", zap.Int("cnt", len(years)))
		return nil, fmt.Errorf("%w: need %v years with data, got %v",
			common.ErrorInsufficientData, MinTrendYearCnt, len(years))
	}

	intercept, slope := stat.LinearRegression(years, means, nil, false)
	rSquared := stat.RSquared(years, means, nil, intercept, slope)
	if !utils.IsFinite(rSquared) {
		// flat series, the line explains all of it
		rSquared = 1
	}

	res := &model.WarmingTrend{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		PerDecade: slope * YearsPerDecade,
		Years:     len(years),
	}

	logger.Debug("fit warming trend success", zap.Any("trend", res))
	return res, nil
}
