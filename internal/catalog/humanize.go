package catalog

import (
	"fmt"
	"strings"
)

// CleanText strips the literal "محطة " (station) and "اتجاه " (direction)
// prefix tokens wherever they occur, so humanized sentences don't read
// "محطة محطة رمسيس". Blind substring removal, same as the seeded data
// expects.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "محطة ", "")
	s = strings.ReplaceAll(s, "اتجاه ", "")
	return s
}

// HumanizeStep turns one route leg into a rider-facing Arabic sentence,
// branching on the transport mode.
func HumanizeStep(step RouteStep) string {
	var msg string

	switch step.TransportType {
	case "مترو":
		msg = fmt.Sprintf("هتركب المترو من محطة %s (%s) في اتجاه %s، وهتنزّل في محطة %s.",
			CleanText(step.BoardingPoint), step.LineName, CleanText(step.DirectionDetails), CleanText(step.ExitPoint))
	case "ميكروباص":
		locDesc := "اسأل عليه في الموقف العمومي"
		if step.BoardingPoint != "" {
			locDesc = fmt.Sprintf("وده هتلاقيه بيحمّل من %s", step.BoardingPoint)
		}
		msg = fmt.Sprintf("هتركب ميكروباص %s، %s، وهتنزّل عند %s.", step.LineName, locDesc, step.ExitPoint)
	default:
		msg = fmt.Sprintf("اركب %s (%s) من %s وانزل في %s.",
			step.TransportType, step.LineName, step.BoardingPoint, step.ExitPoint)
	}

	if step.HumanTip != "" {
		msg += fmt.Sprintf(" (نصيحة: %s)", step.HumanTip)
	}
	return msg
}
