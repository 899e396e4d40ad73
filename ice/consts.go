package ice

import "github.com/uyouii/polarview/model"

const (
	// LossRate is the ice lost in percent per °C of warming per decade.
	LossRate = 3.4

	FullIcePercent = 100.0
	YearsPerDecade = 10.0
)

var (
	TemperatureIncreaseRange = model.Range{Lower: 0, Upper: 6}
	HorizonYearsRange        = model.Range{Lower: 10, Upper: 150}

	RemainingIceRange = model.Range{Lower: 0, Upper: FullIcePercent}
)
