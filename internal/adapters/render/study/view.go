package study

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wadofetch/internal/domain"
)

// RenderOptions controls how much of the study tree is printed.
type RenderOptions struct {
	// ShowInstances lists individual instances under each series.
	ShowInstances bool
	// MaxInstances caps the instances listed per series; zero means all.
	MaxInstances int
}

func renderView(s *domain.Study, opts RenderOptions, st styles) string {
	lines := []string{
		st.title.Render(studyTitle(s)),
		st.header.Render(fmt.Sprintf("patient: %s (%s)  date: %s  series: %d",
			patientLabel(s.PatientName), s.PatientID, dateLabel(s.StudyDate), len(s.SeriesList))),
	}

	if len(s.SeriesList) == 0 {
		lines = append(lines, st.empty.Render("No series loaded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, series := range s.SeriesList {
		lines = append(lines, st.section.Render(renderSeries(series, opts, st)))
	}

	if s.SeriesLoader != nil && s.SeriesLoader.HasNext() {
		lines = append(lines, st.note.Render("More series available (lazy loading)."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSeries(series *domain.Series, opts RenderOptions, st styles) string {
	style := st.series
	if domain.IsLowPriorityModality(series.Modality) {
		style = st.lowPriority
	}

	parts := []string{
		style.Render(seriesTitle(series)),
		st.detail.Render(fmt.Sprintf("instances: %d", len(series.Instances))),
	}

	if opts.ShowInstances {
		for i, instance := range series.Instances {
			if opts.MaxInstances > 0 && i >= opts.MaxInstances {
				parts = append(parts, st.instance.Render(fmt.Sprintf("… %d more", len(series.Instances)-i)))
				break
			}
			parts = append(parts, st.instance.Render(instanceLine(instance)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func studyTitle(s *domain.Study) string {
	description := strings.TrimSpace(s.StudyDescription)
	if description == "" {
		description = "Study"
	}
	return fmt.Sprintf("%s [%s]", description, s.StudyInstanceUID)
}

func seriesTitle(series *domain.Series) string {
	description := strings.TrimSpace(series.SeriesDescription)
	if description == "" {
		description = "Series"
	}
	return fmt.Sprintf("#%.0f %s (%s)", series.SeriesNumber, description, series.Modality)
}

func instanceLine(instance *domain.SopInstance) string {
	line := fmt.Sprintf("%4.0f  %s", instance.InstanceNumber, instance.SOPInstanceUID)
	if instance.PhotometricInterpretation == "PALETTE COLOR" {
		line += "  [palette]"
	}
	return line
}

func patientLabel(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}

func dateLabel(date string) string {
	if date == "" {
		return "n/a"
	}
	return date
}
