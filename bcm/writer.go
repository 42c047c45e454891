package bcm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bcmaps/core"
)

// Write serialises m in BCM format: a [Cities] section in city ID order
// followed by a [Roads] section in road insertion order. Coordinates use the
// shortest representation that parses back to the same float64.
func Write(w io.Writer, m *core.Map) error {
	bw := bufio.NewWriter(w)
	if name := m.Name(); name != "" {
		_, _ = bw.WriteString(commentMark + " " + name + "\n\n")
	}

	_, _ = bw.WriteString(headerCities + "\n")
	for _, c := range m.Cities() {
		_, _ = bw.WriteString(c.Name() + ", " + formatCoord(c.X()) + ", " + formatCoord(c.Y()) + "\n")
	}

	_, _ = bw.WriteString("\n" + headerRoads + "\n")
	for _, r := range m.Roads() {
		_, _ = bw.WriteString(r.A().Name() + ", " + r.B().Name() + "\n")
	}

	return bw.Flush()
}

// WriteString is Write into a string.
func WriteString(m *core.Map) string {
	var sb strings.Builder
	_ = Write(&sb, m)

	return sb.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
