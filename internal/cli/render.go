package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	nxcube "github.com/seamusw/nxcube"
)

var faceletStyles = map[nxcube.Color]lipgloss.Style{
	nxcube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("238")),
	nxcube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("238")),
	nxcube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("255")),
	nxcube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	nxcube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	nxcube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("238")),
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

var dimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

func renderFacelet(col nxcube.Color) string {
	return faceletStyles[col].Render(col.String() + " ")
}

func renderFaceRow(c *nxcube.Cube, f nxcube.FaceID, row int) string {
	var b strings.Builder
	for col := 0; col < c.Size(); col++ {
		b.WriteString(renderFacelet(c.ColorAt(f, row, col)))
	}
	return b.String()
}

// renderNet draws the cube unfolded: U on top, the L F R B band in the
// middle, D at the bottom.
func renderNet(c *nxcube.Cube) string {
	n := c.Size()
	pad := strings.Repeat("  ", n)
	var b strings.Builder

	for row := 0; row < n; row++ {
		b.WriteString(pad)
		b.WriteString(renderFaceRow(c, nxcube.FaceU, row))
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, f := range []nxcube.FaceID{nxcube.FaceL, nxcube.FaceF, nxcube.FaceR, nxcube.FaceB} {
			b.WriteString(renderFaceRow(c, f, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		b.WriteString(pad)
		b.WriteString(renderFaceRow(c, nxcube.FaceD, row))
		b.WriteString("\n")
	}
	return b.String()
}
