package gistemp

const (
	// the file opens with a one line title, e.g. "Land-Ocean: Global Means"
	TitleLineCnt = 1

	YearColumn       = 0
	FirstMonthColumn = 1
	MinColumnCnt     = FirstMonthColumn + 12

	HeaderYearField = "Year"
)

var (
	// cells the publisher uses for months not yet measured
	AbsentMarkers = []string{"***", "****", "NA", ""}
)
