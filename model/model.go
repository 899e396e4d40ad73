package model

import (
	"fmt"
	"math"
)

const MonthsPerYear = 12

// Absent marks a month without a measurement.
func Absent() float64 {
	return math.NaN()
}

func IsAbsent(v float64) bool {
	return math.IsNaN(v)
}

type TemperatureRecord struct {
	Year int
	// Months holds the Jan..Dec anomalies in °C, absent months are NaN
	Months []float64
}

func (r *TemperatureRecord) PresentMonths() []float64 {
	res := make([]float64, 0, len(r.Months))
	for _, v := range r.Months {
		if IsAbsent(v) {
			continue
		}
		res = append(res, v)
	}
	return res
}

// TemperatureRow is a record ready for display, absent months are nil.
type TemperatureRow struct {
	Year   int        `json:"year"`
	Months []*float64 `json:"months"`
}

func (r *TemperatureRecord) Row() TemperatureRow {
	months := make([]*float64, len(r.Months))
	for i, v := range r.Months {
		if IsAbsent(v) {
			continue
		}
		value := v
		months[i] = &value
	}
	return TemperatureRow{Year: r.Year, Months: months}
}

type TemperatureSeries struct {
	Records []TemperatureRecord
}

func (s *TemperatureSeries) DebugString() string {
	if s.IsEmpty() {
		return "recordCount: 0"
	}
	first, last := s.Records[0].Year, s.Records[len(s.Records)-1].Year
	return fmt.Sprintf("recordCount: %v, years: %v-%v", len(s.Records), first, last)
}

func (s *TemperatureSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Records) == 0
}

func (s *TemperatureSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// Validate checks that every record carries exactly twelve months
// and that years are strictly ascending.
func (s *TemperatureSeries) Validate() error {
	if s == nil {
		return nil
	}
	for i, record := range s.Records {
		if len(record.Months) != MonthsPerYear {
			return &SeriesError{Year: record.Year,
				Reason: fmt.Sprintf("expected %v monthly values, got %v", MonthsPerYear, len(record.Months))}
		}
		if i > 0 && record.Year <= s.Records[i-1].Year {
			return &SeriesError{Year: record.Year,
				Reason: fmt.Sprintf("year not after previous year %v", s.Records[i-1].Year)}
		}
	}
	return nil
}

// SeriesError describes the record that made a series malformed.
type SeriesError struct {
	Year   int
	Reason string
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("year %v: %v", e.Year, e.Reason)
}

type AnnualMean struct {
	Year int `json:"year"`
	// Mean is nil when no month of the year has data
	Mean *float64 `json:"mean"`
}

func (m AnnualMean) HasData() bool {
	return m.Mean != nil
}

func (m AnnualMean) Value() (float64, bool) {
	if m.Mean == nil {
		return 0, false
	}
	return *m.Mean, true
}

type TemperatureSummary struct {
	Latest       AnnualMean   `json:"latest"`
	Prior        AnnualMean   `json:"prior"`
	MonthlyMeans []AnnualMean `json:"monthly_means"`
}

type WarmingTrend struct {
	Slope     float64 `json:"slope"` // °C per year
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
	PerDecade float64 `json:"per_decade"`
	Years     int     `json:"years"` // years with data used in the fit
}
