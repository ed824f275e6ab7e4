// Package render draws discovered sensors for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("214")
	colorDim    = lipgloss.Color("243")
	colorBorder = lipgloss.Color("237")
)

var units = map[hardware.HardwareType]string{
	hardware.TypeTemp:    "°C",
	hardware.TypeFan:     "RPM",
	hardware.TypeControl: "%",
}

// Table renders every sensor grouped by type with its current value
func Table(hw *hardware.Hardware) string {
	var sections []string

	for _, t := range []hardware.HardwareType{hardware.TypeTemp, hardware.TypeFan, hardware.TypeControl} {
		sensors := hw.Of(t)
		if len(sensors) == 0 {
			continue
		}
		sections = append(sections, section(t, sensors))
	}

	if len(sections) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("no sensors found")
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func section(t hardware.HardwareType, sensors []*hardware.Sensor) string {
	nameW, idW := len("sensor"), len("id")
	for _, s := range sensors {
		nameW = max(nameW, lipgloss.Width(s.Name))
		idW = max(idW, lipgloss.Width(s.ID))
	}

	title := lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Render(strings.ToUpper(string(t)))

	dim := lipgloss.NewStyle().Foreground(colorDim)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		dim.Width(nameW+2).Render("sensor"),
		dim.Width(idW+2).Render("id"),
		dim.Width(10).Align(lipgloss.Right).Render("value"),
	)

	rows := []string{title, header}
	for _, s := range sensors {
		value := fmt.Sprintf("%d %s", s.Value(), units[t])
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(nameW+2).Render(s.Name),
			dim.Width(idW+2).Render(s.ID),
			lipgloss.NewStyle().Width(10).Align(lipgloss.Right).Render(value),
		))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
