package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/radarkit/coordtran"
	"github.com/radarkit/coordtran/internal/config"
)

func writeRecord(w io.Writer, out config.OutputConfig, header, fields []string) error {
	if out.Format != "csv" {
		_, err := fmt.Fprintln(w, strings.Join(fields, " "))
		return err
	}
	cw := csv.NewWriter(w)
	if out.Header {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// formatFloat drops the sign from values that round to zero, so a tiny
// negative latitude prints as 0.0000 rather than -0.0000.
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		s = s[1:]
	}
	return s
}

// formatBearing keeps the printed value inside [0, 360) so it can be fed
// back into r2g; 359.99999 at four decimals prints as 0.0000.
func formatBearing(b coordtran.Bearing, prec int) string {
	deg, ok := b.Degrees()
	if !ok {
		return b.String()
	}
	s := formatFloat(deg, prec)
	if v, _ := strconv.ParseFloat(s, 64); v >= 360 {
		s = formatFloat(0, prec)
	}
	return s
}

// formatLon keeps the printed value inside [-180, 180).
func formatLon(lon float64, prec int) string {
	s := formatFloat(lon, prec)
	if v, _ := strconv.ParseFloat(s, 64); v >= 180 {
		s = formatFloat(-180, prec)
	}
	return s
}
