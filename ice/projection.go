package ice

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
)

func Validate(req model.IceProjectionRequest) error {
	if math.IsNaN(req.TemperatureIncrease) || !TemperatureIncreaseRange.Contains(req.TemperatureIncrease) {
		return fmt.Errorf("%w: temperature increase %v outside %v",
			common.ErrorInvalidParameter, req.TemperatureIncrease, TemperatureIncreaseRange)
	}
	if !HorizonYearsRange.Contains(float64(req.HorizonYears)) {
		return fmt.Errorf("%w: horizon %v years outside %v",
			common.ErrorInvalidParameter, req.HorizonYears, HorizonYearsRange)
	}
	return nil
}

// RemainingAt is the clamped remaining ice percentage yearOffset years out.
func RemainingAt(temperatureIncrease float64, yearOffset int) float64 {
	raw := FullIcePercent - LossRate*temperatureIncrease*(float64(yearOffset)/YearsPerDecade)
	return RemainingIceRange.Clamp(raw)
}

// Project builds the remaining ice series for every year offset from 0 to
// the horizon inclusive. Each point depends only on its own offset.
func Project(ctx context.Context, req model.IceProjectionRequest) (*model.IceProjectionResult, error) {
	logger := utils.GetLogger(ctx)

	if err := Validate(req); err != nil {
		logger.Error("invalid ice projection request", zap.Error(err),
			zap.Float64("temperatureIncrease", req.TemperatureIncrease),
			zap.Int("horizonYears", req.HorizonYears))
		return nil, err
	}

	points := make([]model.IcePoint, req.HorizonYears+1)
	for i := range points {
		points[i] = model.IcePoint{
			YearOffset:          i,
			RemainingIcePercent: RemainingAt(req.TemperatureIncrease, i),
		}
	}

	res := &model.IceProjectionResult{
		Request: req,
		Points:  points,
	}

	last, _ := res.Last()
	logger.Debug("ice projection success",
		zap.Float64("temperatureIncrease", req.TemperatureIncrease),
		zap.Int("horizonYears", req.HorizonYears),
		zap.Float64("finalIcePercent", last.RemainingIcePercent))
	return res, nil
}

// MeltOutYear returns the first whole year offset at which no ice is left.
// There is none when the temperature does not rise, or when the rise is so
// small that the year does not fit in an int.
func MeltOutYear(temperatureIncrease float64) (int, bool) {
	if math.IsNaN(temperatureIncrease) || temperatureIncrease <= 0 {
		return 0, false
	}
	yearsToZero := FullIcePercent * YearsPerDecade / (LossRate * temperatureIncrease)
	if math.IsInf(yearsToZero, 0) || yearsToZero >= math.MaxInt {
		return 0, false
	}
	year := int(math.Ceil(yearsToZero))
	// guard against the division landing just past a whole year
	if year > 0 && RemainingAt(temperatureIncrease, year-1) == 0 {
		year--
	}
	return year, true
}
