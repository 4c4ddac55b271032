package answers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/aoc-2018/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const defaultTitle = "Advent of Code 2018"

type RenderOptions struct {
	Title string
	// ShowTiming adds a bar comparing each day's solve time to the slowest.
	ShowTiming bool
}

func renderView(reports []application.Report, opts RenderOptions, s styles) string {
	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(summaryLine(reports)),
	}

	if len(reports) == 0 {
		lines = append(lines, s.empty.Render("No solved days."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	slowest := time.Duration(0)
	for _, report := range reports {
		slowest = max(slowest, report.Elapsed)
	}

	for _, report := range reports {
		lines = append(lines, s.section.Render(renderDay(report, opts, slowest, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryLine(reports []application.Report) string {
	line := fmt.Sprintf("days: %d", len(reports))

	verified, mismatched := 0, 0
	for _, report := range reports {
		if report.Status == application.VerifyStatusUnchecked {
			continue
		}
		verified++
		if report.Mismatched() {
			mismatched++
		}
	}
	if verified > 0 {
		line += fmt.Sprintf(", verified: %d, mismatched: %d", verified, mismatched)
	}

	return line
}

func renderDay(report application.Report, opts RenderOptions, slowest time.Duration, s styles) string {
	heading := s.day.Render(fmt.Sprintf("Day %02d", int(report.Solution.Day)))
	if badge := statusBadge(report.Status, s); badge != "" {
		heading = lipgloss.JoinHorizontal(lipgloss.Top, heading, " ", badge)
	}

	if report.Status == application.VerifyStatusMissingInput {
		return heading
	}

	recordedOne, recordedTwo := recordedDifferences(report)
	parts := []string{
		heading,
		partLine("Part one:", report.Solution.PartOne, recordedOne, s),
		partLine("Part two:", report.Solution.PartTwo, recordedTwo, s),
	}

	if opts.ShowTiming {
		parts = append(parts, timingLine(report.Elapsed, slowest, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// recordedDifferences returns the recorded answers that differ from the
// solved ones, empty where they agree.
func recordedDifferences(report application.Report) (partOne, partTwo string) {
	if report.Expected == nil || !report.Mismatched() {
		return "", ""
	}

	if report.Expected.PartOne != report.Solution.PartOne {
		partOne = report.Expected.PartOne
	}
	if report.Expected.PartTwo != report.Solution.PartTwo {
		partTwo = report.Expected.PartTwo
	}

	return partOne, partTwo
}

func partLine(label, answer, expected string, s styles) string {
	line := lipgloss.JoinHorizontal(lipgloss.Top, s.part.Render(label), " ", s.answer.Render(answer))
	if expected != "" {
		line += " " + s.expected.Render(fmt.Sprintf("(recorded %s)", expected))
	}

	return line
}

func statusBadge(status application.VerifyStatus, s styles) string {
	switch status {
	case application.VerifyStatusMatch:
		return s.match.Render("[ok]")
	case application.VerifyStatusMismatch:
		return s.mismatch.Render("[mismatch]")
	case application.VerifyStatusMissingInput:
		return s.missing.Render("[missing input]")
	default:
		return ""
	}
}

func timingLine(elapsed, slowest time.Duration, s styles) string {
	percent := 0.0
	if slowest > 0 {
		percent = float64(elapsed) / float64(slowest) * 100
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(percent, 24, s),
		" ",
		s.timing.Render(formatElapsed(elapsed)),
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatElapsed(elapsed time.Duration) string {
	if elapsed <= 0 {
		return "n/a"
	}
	if elapsed < time.Millisecond {
		return elapsed.Round(time.Microsecond).String()
	}

	return elapsed.Round(100 * time.Microsecond).String()
}
