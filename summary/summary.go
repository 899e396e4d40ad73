package summary

import (
	"context"
	"fmt"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// AnnualMeanOf averages the months of record that have data.
// A year where every month is absent has no mean.
func AnnualMeanOf(record model.TemperatureRecord) model.AnnualMean {
	res := model.AnnualMean{Year: record.Year}

	values := record.PresentMonths()
	if len(values) == 0 {
		return res
	}

	mean := stat.Mean(values, nil)
	res.Mean = &mean
	return res
}

// MonthlyMeans returns one annual mean per record, in series order.
func MonthlyMeans(series *model.TemperatureSeries) []model.AnnualMean {
	res := make([]model.AnnualMean, 0, series.Len())
	if series == nil {
		return res
	}
	for _, record := range series.Records {
		res = append(res, AnnualMeanOf(record))
	}
	return res
}

func Summarize(ctx context.Context, series *model.TemperatureSeries) (*model.TemperatureSummary, error) {
	logger := utils.GetLogger(ctx)

	if err := checkShape(series); err != nil {
		logger.Error("malformed temperature series", zap.Error(err))
		return nil, err
	}

	if series.Len() < MinSummaryRecordCnt {
		logger.Error("series too short, skip summarize",
			zap.Int("cnt", series.Len()), zap.Int("min", MinSummaryRecordCnt))
		return nil, fmt.Errorf("%w: need %v years, got %v",
			common.ErrorInsufficientData, MinSummaryRecordCnt, series.Len())
	}

	means := MonthlyMeans(series)
	res := &model.TemperatureSummary{
		Latest:       means[len(means)-1],
		Prior:        means[len(means)-2],
		MonthlyMeans: means,
	}

	logger.Debug("summarize temperature series success",
		zap.String("series", series.DebugString()),
		zap.Bool("latestHasData", res.Latest.HasData()),
		zap.Bool("priorHasData", res.Prior.HasData()))
	return res, nil
}

// checkShape only rejects records with a wrong month count, year ordering is
// the parser's concern.
func checkShape(series *model.TemperatureSeries) error {
	if series == nil {
		return nil
	}
	for _, record := range series.Records {
		if len(record.Months) != model.MonthsPerYear {
			return fmt.Errorf("%w: year %v has %v monthly values, want %v",
				common.ErrorMalformedSeries, record.Year, len(record.Months), model.MonthsPerYear)
		}
	}
	return nil
}
