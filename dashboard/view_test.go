package dashboard

import (
	"errors"
	"testing"

	"github.com/uyouii/polarview/common"
)

func TestParseView(t *testing.T) {
	for _, view := range AllViews() {
		got, err := ParseView(view.String())
		if err != nil {
			t.Errorf("ParseView(%q) error = %v", view.String(), err)
			continue
		}
		if got != view {
			t.Errorf("ParseView(%q) = %v, want %v", view.String(), got, view)
		}
	}

	if got, err := ParseView("  ICE "); err != nil || got != ViewIceSimulation {
		t.Errorf("ParseView with padding = (%v, %v)", got, err)
	}
	if _, err := ParseView("globe"); !errors.Is(err, common.ErrorInvalidParameter) {
		t.Errorf("ParseView(globe) error = %v, want ErrorInvalidParameter", err)
	}
}

func TestViewString(t *testing.T) {
	if View(0).Valid() {
		t.Errorf("zero view should not be valid")
	}
	if got := View(42).String(); got != "View(42)" {
		t.Errorf("View(42).String() = %q", got)
	}
}
