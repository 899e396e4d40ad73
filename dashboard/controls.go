package dashboard

import "github.com/uyouii/polarview/ice"

// PreviewRecordCnt is how many leading records the temperature page shows.
const PreviewRecordCnt = 5

type Slider struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

type Controls struct {
	TemperatureIncrease Slider `json:"temperature_increase"`
	HorizonYears        Slider `json:"horizon_years"`
}

func DefaultControls() Controls {
	return Controls{
		TemperatureIncrease: Slider{
			Min:     ice.TemperatureIncreaseRange.Lower,
			Max:     ice.TemperatureIncreaseRange.Upper,
			Default: 1.8,
			Step:    0.1,
		},
		HorizonYears: Slider{
			Min:     ice.HorizonYearsRange.Lower,
			Max:     ice.HorizonYearsRange.Upper,
			Default: 80,
			Step:    10,
		},
	}
}
