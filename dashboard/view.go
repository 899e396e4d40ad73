package dashboard

import (
	"fmt"
	"strings"

	"github.com/uyouii/polarview/common"
)

type View int

const (
	ViewTemperature View = iota + 1
	ViewIceSimulation
	ViewSeaLevelMap
	ViewSummary
)

var viewNames = map[View]string{
	ViewTemperature:   "temperature",
	ViewIceSimulation: "ice",
	ViewSeaLevelMap:   "sealevel",
	ViewSummary:       "summary",
}

func AllViews() []View {
	return []View{ViewTemperature, ViewIceSimulation, ViewSeaLevelMap, ViewSummary}
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

func (v View) Valid() bool {
	_, ok := viewNames[v]
	return ok
}

func ParseView(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for view, viewName := range viewNames {
		if viewName == name {
			return view, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown view %q", common.ErrorInvalidParameter, name)
}
