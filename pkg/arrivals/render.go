package arrivals

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	clockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	delayedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// RenderTable writes the arrivals board to w: a line with the current local
// time, then one table row per arrival.
func RenderTable(w io.Writer, list []Arrival, now time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, clockStyle.Render(fmt.Sprintf("Current time: %s (Netherlands Time)", now.Format("15:04"))))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Flight", "Date", "Time", "Destination", "City", "Flag", "Status", "Gate")

	for _, a := range list {
		status := a.Status
		if status == "Delayed" {
			status = delayedStyle.Render(status)
		}
		t.Row(a.Flight, a.Date, a.Time, a.Destination, a.City, a.Flag, status, a.Gate)
	}

	fmt.Fprintln(w, t.Render())
}
