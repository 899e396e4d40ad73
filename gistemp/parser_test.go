package gistemp

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/uyouii/polarview/common"
	"github.com/uyouii/polarview/model"
)

const sampleTable = `Land-Ocean: Global Means
Year,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec,J-D,D-N,DJF,MAM,JJA,SON
1880,-.20,-.25,-.09,-.16,-.10,-.21,-.18,-.10,-.15,-.24,-.22,-.18,-.17,***,***,-.12,-.16,-.20
2024,1.24,1.44,1.39,1.31,1.16,1.23,1.20,1.30,1.23,1.33,1.30,1.27,1.28,1.29,1.36,1.29,1.24,1.28
2025,1.37,1.26,1.36,1.23,1.06,***,***,***,***,***,***,***,***,***,1.30,1.22,***,***
`

func TestParse(t *testing.T) {
	series, err := Parse(context.Background(), strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("got %d records, want 3", series.Len())
	}

	wantYears := []int{1880, 2024, 2025}
	for i, record := range series.Records {
		if record.Year != wantYears[i] {
			t.Errorf("record %d year = %d, want %d", i, record.Year, wantYears[i])
		}
		if len(record.Months) != model.MonthsPerYear {
			t.Errorf("record %d has %d months", i, len(record.Months))
		}
	}

	if got := series.Records[0].Months[0]; math.Abs(got-(-0.20)) > 1e-12 {
		t.Errorf("1880 Jan = %v, want -0.20", got)
	}
	if got := series.Records[1].Months[11]; math.Abs(got-1.27) > 1e-12 {
		t.Errorf("2024 Dec = %v, want 1.27", got)
	}

	latest := series.Records[2]
	if latest.Months[4] != 1.06 {
		t.Errorf("2025 May = %v, want 1.06", latest.Months[4])
	}
	for month := 5; month < model.MonthsPerYear; month++ {
		if !model.IsAbsent(latest.Months[month]) {
			t.Errorf("2025 month %d = %v, want absent", month+1, latest.Months[month])
		}
	}
	if got := len(latest.PresentMonths()); got != 5 {
		t.Errorf("2025 has %d present months, want 5", got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "Land-Ocean: Global Means\n", "Land-Ocean: Global Means\nYear,Jan\n"} {
		series, err := Parse(context.Background(), strings.NewReader(input))
		if err != nil {
			t.Errorf("Parse(%q) error = %v", input, err)
			continue
		}
		if !series.IsEmpty() {
			t.Errorf("Parse(%q) returned %d records", input, series.Len())
		}
	}
}

func TestParseMalformed(t *testing.T) {
	header := "Land-Ocean: Global Means\nYear,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec\n"
	tests := []struct {
		name string
		rows string
	}{
		{"too few months", "2024,1,2,3,4,5,6,7,8,9,10,11\n"},
		{"bad year", "20x4,1,2,3,4,5,6,7,8,9,10,11,12\n"},
		{"bad value", "2024,1,2,3,4,5,six,7,8,9,10,11,12\n"},
		{"nan value", "2024,1,2,3,4,5,NaN,7,8,9,10,11,12\n"},
		{"years out of order", "2024,1,2,3,4,5,6,7,8,9,10,11,12\n2023,1,2,3,4,5,6,7,8,9,10,11,12\n"},
		{"duplicate year", "2024,1,2,3,4,5,6,7,8,9,10,11,12\n2024,1,2,3,4,5,6,7,8,9,10,11,12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Parse(context.Background(), strings.NewReader(header+tt.rows))
			if !errors.Is(err, common.ErrorMalformedSeries) {
				t.Errorf("Parse() error = %v, want ErrorMalformedSeries", err)
			}
			if series != nil {
				t.Errorf("Parse() returned a partial series")
			}
		})
	}
}

func TestParseOrderErrorKeepsYear(t *testing.T) {
	input := "Land-Ocean: Global Means\nYear,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec\n" +
		"2024,1,2,3,4,5,6,7,8,9,10,11,12\n2023,1,2,3,4,5,6,7,8,9,10,11,12\n"

	_, err := Parse(context.Background(), strings.NewReader(input))
	if !errors.Is(err, common.ErrorMalformedSeries) {
		t.Fatalf("Parse() error = %v, want ErrorMalformedSeries", err)
	}
	var seriesErr *model.SeriesError
	if !errors.As(err, &seriesErr) {
		t.Fatalf("Parse() error = %v, want a SeriesError inside", err)
	}
	if seriesErr.Year != 2023 {
		t.Errorf("SeriesError year = %d, want 2023", seriesErr.Year)
	}
}
