package analysis

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/thermocycle/internal/cycle"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(25)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Report renders a performance summary for one cycle: vertex temperatures,
// heat input and rejection, net work and thermal efficiency, two decimal
// places with explicit units throughout.
func Report(c cycle.Cycle, perf Performance) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s cycle performance", c.Name)))
	sb.WriteString("\n\n")

	for _, s := range c.States {
		line(&sb, fmt.Sprintf("T%s", s.Label), fmt.Sprintf("%.2f K", s.T))
	}
	sb.WriteString("\n")

	line(&sb, "gas mass", fmt.Sprintf("%.2f kg", perf.Mass))
	line(&sb, "heat input", fmt.Sprintf("%.2f kJ", perf.HeatIn))
	line(&sb, "heat rejected", fmt.Sprintf("%.2f kJ", perf.HeatOut))
	line(&sb, "net work", fmt.Sprintf("%.2f kJ", perf.NetWork))
	line(&sb, "thermal efficiency", fmt.Sprintf("%.2f %%", perf.Efficiency))
	line(&sb, "mean effective pressure", fmt.Sprintf("%.2f kPa", perf.MEP))

	return sb.String()
}

func line(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(label))
	sb.WriteString(valueStyle.Render(value))
	sb.WriteString("\n")
}
