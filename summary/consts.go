package summary

const (
	// Summarize compares the last two years of the series
	MinSummaryRecordCnt = 2
	// a regression line needs two distinct years with data
	MinTrendYearCnt = 2

	YearsPerDecade = 10
)
