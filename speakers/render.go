package speakers

import (
	"fmt"
	"strings"

	"github.com/kbukum/fusionkit/fusion"
)

// RenderLines renders one human-readable line per fused segment, in
// transcript order:
//
//	{resolved display name}: [{mm:ss}-{mm:ss}] {text}
//
// Unattributed segments render under the "Unknown" label.
func RenderLines(t *fusion.DiarizedTranscript, reg *Registry) []string {
	lines := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		name := "Unknown"
		if seg.SpeakerIndex != nil {
			name = reg.Resolve(*seg.SpeakerIndex).DisplayName
		}
		lines = append(lines, fmt.Sprintf("%s: [%s-%s] %s",
			name, formatClock(seg.Start), formatClock(seg.End), seg.Text))
	}
	return lines
}

// RenderTranscript joins the rendered lines with newlines.
func RenderTranscript(t *fusion.DiarizedTranscript, reg *Registry) string {
	return strings.Join(RenderLines(t, reg), "\n")
}

// formatClock formats seconds as mm:ss. Minutes keep counting past 59.
func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
