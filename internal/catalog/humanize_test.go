package catalog

import (
	"strings"
	"testing"
)

func TestCleanText_StripsStationAndDirectionTokens(t *testing.T) {
	got := CleanText("محطة رمسيس")
	if got != "رمسيس" {
		t.Fatalf("expected station token stripped, got %q", got)
	}

	got = CleanText("اتجاه حلوان")
	if got != "حلوان" {
		t.Fatalf("expected direction token stripped, got %q", got)
	}

	if CleanText("") != "" {
		t.Fatalf("expected empty input to stay empty")
	}
}

func TestHumanizeStep_Metro(t *testing.T) {
	step := RouteStep{
		TransportType:    "مترو",
		LineName:         "الخط الأول",
		BoardingPoint:    "محطة رمسيس",
		ExitPoint:        "محطة السادات",
		DirectionDetails: "اتجاه حلوان",
	}

	msg := HumanizeStep(step)

	if strings.Contains(msg, "محطة رمسيس") {
		t.Fatalf("boarding token not stripped: %q", msg)
	}
	if strings.Contains(msg, "اتجاه حلوان") {
		t.Fatalf("direction token not stripped: %q", msg)
	}
	if !strings.Contains(msg, "رمسيس") || !strings.Contains(msg, "حلوان") {
		t.Fatalf("cleaned names missing: %q", msg)
	}
	if !strings.Contains(msg, "الخط الأول") {
		t.Fatalf("line name missing: %q", msg)
	}
}

func TestHumanizeStep_MinibusWithBoardingPoint(t *testing.T) {
	step := RouteStep{
		TransportType: "ميكروباص",
		LineName:      "السلام - رمسيس",
		BoardingPoint: "موقف السلام",
		ExitPoint:     "رمسيس",
	}

	msg := HumanizeStep(step)
	if !strings.Contains(msg, "موقف السلام") {
		t.Fatalf("pickup location missing: %q", msg)
	}
	if strings.Contains(msg, "الموقف العمومي") {
		t.Fatalf("public-stand fallback should not appear when boarding point is set: %q", msg)
	}
}

func TestHumanizeStep_MinibusWithoutBoardingPoint(t *testing.T) {
	step := RouteStep{
		TransportType: "ميكروباص",
		LineName:      "السلام - رمسيس",
		ExitPoint:     "رمسيس",
	}

	msg := HumanizeStep(step)
	if !strings.Contains(msg, "الموقف العمومي") {
		t.Fatalf("expected public-stand instruction: %q", msg)
	}
}

func TestHumanizeStep_FallbackTransportType(t *testing.T) {
	step := RouteStep{
		TransportType: "أتوبيس",
		LineName:      "357",
		BoardingPoint: "العباسية",
		ExitPoint:     "التحرير",
	}

	msg := HumanizeStep(step)
	for _, want := range []string{"أتوبيس", "357", "العباسية", "التحرير"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in fallback sentence %q", want, msg)
		}
	}
}

func TestHumanizeStep_AppendsTip(t *testing.T) {
	step := RouteStep{
		TransportType: "مترو",
		LineName:      "الخط الثاني",
		BoardingPoint: "شبرا",
		ExitPoint:     "المنيب",
		HumanTip:      "اركب آخر عربية",
	}

	msg := HumanizeStep(step)
	if !strings.Contains(msg, "(نصيحة: اركب آخر عربية)") {
		t.Fatalf("tip missing or malformed: %q", msg)
	}

	step.HumanTip = ""
	msg = HumanizeStep(step)
	if strings.Contains(msg, "نصيحة") {
		t.Fatalf("unexpected tip suffix without HumanTip: %q", msg)
	}
}
