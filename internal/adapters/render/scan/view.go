package scan

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	Now time.Time
}

func renderDrives(drives []domain.DriveInfo, s styles) string {
	var total, free uint64
	for _, drive := range drives {
		total += drive.TotalSize
		free += drive.FreeSize
	}

	lines := []string{
		s.title.Render("Drives"),
		s.header.Render(fmt.Sprintf("drives: %d, free %s of %s", len(drives), humanize.IBytes(free), humanize.IBytes(total))),
	}
	if len(drives) == 0 {
		lines = append(lines, s.empty.Render("No drives available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, drive := range drives {
		lines = append(lines, driveLine(drive, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func driveLine(drive domain.DriveInfo, s styles) string {
	usedPercent := 0.0
	if drive.TotalSize > 0 {
		usedPercent = 100 * float64(drive.TotalSize-drive.FreeSize) / float64(drive.TotalSize)
	}

	label := s.game.Render(drive.Letter)
	if drive.Name != "" {
		label += " " + s.detail.Render(drive.Name)
	}
	kind := s.meta.Render(fmt.Sprintf("[%s]", drive.Type))
	if !drive.Fixed() {
		kind = s.warning.Render(fmt.Sprintf("[%s]", drive.Type))
	}

	freeColor := interpolateColor(100-usedPercent, 0, 100)
	freeText := lipgloss.NewStyle().Foreground(freeColor).Render(
		fmt.Sprintf("%s free of %s", domain.FormatSize(drive.FreeSize), domain.FormatSize(drive.TotalSize)),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		kind,
		" ",
		renderProgressBar(usedPercent, 20, s),
		" ",
		freeText,
	)
}

func renderResults(game domain.GameID, results []domain.PathCheckResult, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Installations of %s", game)),
		s.header.Render(fmt.Sprintf("found: %d", len(results))),
	}
	if len(results) == 0 {
		lines = append(lines, s.empty.Render("No installations found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, result := range results {
		lines = append(lines, resultLine(result, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ResultLine renders one path with its verification verdict.
func ResultLine(result domain.PathCheckResult) string {
	return resultLine(result, newStyles())
}

func resultLine(result domain.PathCheckResult, s styles) string {
	path := s.detail.Render(result.Path)

	switch {
	case result.IsChecking:
		return path + " " + s.pending.Render("checking...")
	case result.Outcome == nil:
		return path + " " + s.warning.Render("could not fingerprint")
	case result.Outcome.Supported():
		verdict := fmt.Sprintf("%s %s (channel %d)", result.Outcome.Game, result.Outcome.Version, result.Outcome.Channel)
		return path + " " + s.ok.Render(verdict) + " " + s.meta.Render(result.Fingerprint)
	case result.Outcome.Status == domain.CheckStatusNetworkError:
		return path + " " + s.warning.Render("not found (catalog unreachable)")
	default:
		reason := "not found"
		if result.Outcome.Reason != "" {
			reason += ": " + result.Outcome.Reason
		}
		return path + " " + s.warning.Render(reason) + " " + s.meta.Render(result.Fingerprint)
	}
}

// ProgressLine summarises a running scan on one line.
func ProgressLine(progress domain.ScanProgress) string {
	s := newStyles()
	counts := fmt.Sprintf(
		"%s dirs, %s files, %d found",
		humanize.Comma(int64(progress.DirectoriesScanned)),
		humanize.Comma(int64(progress.FilesScanned)),
		len(progress.FoundPaths),
	)

	line := s.key.Render(counts)
	if progress.CurrentPath != "" {
		line += " " + s.meta.Render(truncateLeft(progress.CurrentPath, 60))
	}
	return line
}

func renderPaths(records []domain.InstallRecord, s styles) string {
	lines := []string{
		s.title.Render("Installation paths"),
		s.header.Render(fmt.Sprintf("games: %d", len(records))),
	}
	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No paths configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		parts := []string{s.game.Render(string(record.Game))}
		for _, version := range record.SortedVersions() {
			parts = append(parts, versionLines(version, record.Versions[version], s)...)
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func versionLines(version domain.Version, paths domain.VersionPaths, s styles) []string {
	switch p := paths.(type) {
	case domain.LegacyVersionPath:
		return []string{fmt.Sprintf("  %s %s %s", s.key.Render(string(version)), s.meta.Render("all channels:"), s.detail.Render(p.Path))}
	case domain.ChannelVersionPaths:
		lines := make([]string, 0, len(p))
		for _, channel := range p.Channels() {
			lines = append(lines, fmt.Sprintf("  %s %s %s", s.key.Render(string(version)), s.meta.Render(fmt.Sprintf("channel %d:", channel)), s.detail.Render(p[channel])))
		}
		return lines
	default:
		return nil
	}
}

func renderHistory(sessions []domain.Session, games []domain.Game, opts RenderOptions, s styles) string {
	names := make(map[domain.GameID]string, len(games))
	for _, game := range games {
		names[game.ID] = game.Name
	}

	lines := []string{
		s.title.Render("Launch history"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(sessions))),
	}
	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No games launched yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	ordered := append([]domain.Session(nil), sessions...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].StartedAt.After(ordered[j].StartedAt) })

	for _, session := range ordered {
		lines = append(lines, sessionLine(session, names, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(session domain.Session, names map[domain.GameID]string, opts RenderOptions, s styles) string {
	title := string(session.Launch.Game)
	if name := names[session.Launch.Game]; name != "" {
		title = name
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	started := humanize.RelTime(session.StartedAt, now, "ago", "from now")
	status := s.ok.Render("running")
	if !session.Active() {
		status = s.meta.Render(string(session.EndReason))
		if session.EndReason == domain.SessionEndMonitorError {
			status = s.warning.Render(string(session.EndReason))
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.game.Render(title),
		" ",
		s.key.Render(fmt.Sprintf("%s ch%d", session.Launch.Version, session.Launch.Channel)),
		" ",
		s.detail.Render(started),
		" ",
		s.meta.Render(fmt.Sprintf("for %s", formatDuration(session.Duration(now)))),
		" ",
		status,
	)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return "under a minute"
	}
	d = d.Round(time.Minute)
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

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

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240.0+15.0*normalized)))
}

func truncateLeft(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return "..." + string(runes[len(runes)-width+3:])
}
