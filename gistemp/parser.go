// Package gistemp reads the GISTEMP monthly anomaly table
// (year, Jan..Dec, then seasonal and annual columns) into a TemperatureSeries.
// Fetching the file is left to the caller.
package gistemp

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/model"
	"github.com/uyouii/polarview/utils"
	"go.uber.org/zap"
)

func Parse(ctx context.Context, r io.Reader) (*model.TemperatureSeries, error) {
	logger := utils.GetLogger(ctx)

	br := bufio.NewReader(r)
	for i := 0; i < TitleLineCnt; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return &model.TemperatureSeries{}, nil
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	series := &model.TemperatureSeries{Records: []model.TemperatureRecord{}}
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("read gistemp csv failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", common.ErrorMalformedSeries, err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(fields) || isHeader(fields) {
			continue
		}

		record, err := parseRecord(fields)
		if err != nil {
			logger.Error("parse gistemp row failed", zap.Int("line", line), zap.Error(err))
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		series.Records = append(series.Records, record)
	}

	if err := series.Validate(); err != nil {
		logger.Error("gistemp series invalid", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", common.ErrorMalformedSeries, err)
	}

	logger.Info("parse gistemp csv success", zap.String("series", series.DebugString()))
	return series, nil
}

func parseRecord(fields []string) (model.TemperatureRecord, error) {
	if len(fields) < MinColumnCnt {
		return model.TemperatureRecord{}, fmt.Errorf("%w: %v columns, want at least %v",
			common.ErrorMalformedSeries, len(fields), MinColumnCnt)
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[YearColumn]))
	if err != nil {
		return model.TemperatureRecord{}, fmt.Errorf("%w: bad year %q",
			common.ErrorMalformedSeries, fields[YearColumn])
	}

	months := make([]float64, model.MonthsPerYear)
	for i := range months {
		value, err := parseCell(fields[FirstMonthColumn+i])
		if err != nil {
			return model.TemperatureRecord{}, fmt.Errorf("%w: year %v month %v: bad value %q",
				common.ErrorMalformedSeries, year, i+1, fields[FirstMonthColumn+i])
		}
		months[i] = value
	}

	return model.TemperatureRecord{Year: year, Months: months}, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if slices.Contains(AbsentMarkers, cell) {
		return model.Absent(), nil
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if !utils.IsFinite(value) {
		return 0, common.ErrorInvalidValue
	}
	return value, nil
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[YearColumn]), HeaderYearField)
}

func isBlank(fields []string) bool {
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
