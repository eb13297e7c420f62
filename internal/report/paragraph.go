package report

import (
	"fmt"
	"strings"
)

// FormatLines converts a narrative line list into flowing text: blank
// lines become paragraph breaks, lines starting with a bullet marker
// become indented list items carrying the given glyph. The content
// tables use "•", "-" and "–" interchangeably as source markers.
func FormatLines(lines []string, glyph string) string {
	var paras []string
	var cur []string

	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = nil
		}
	}

	for _, raw := range lines {
		s := strings.TrimSpace(raw)
		if s == "" {
			flush()
			continue
		}
		if item, ok := stripBullet(s); ok {
			if glyph == "" {
				cur = append(cur, "    "+item)
			} else {
				cur = append(cur, "    "+glyph+"  "+item)
			}
			continue
		}
		cur = append(cur, s)
	}
	flush()
	return strings.Join(paras, "\n\n")
}

func stripBullet(s string) (string, bool) {
	for _, marker := range []string{"•", "–", "-"} {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(strings.TrimPrefix(s, marker)), true
		}
	}
	return s, false
}

func formatPercent(pct int) string { return fmt.Sprintf("%d%%", pct) }

func formatOrdinal(n int) string { return fmt.Sprintf("%d.", n) }
