// Package cli implements the g2r and r2g commands on top of the coordtran
// library. It owns argument parsing, input validation, snapping of noisy
// pole-to-pole ranges and output formatting; the library itself never
// sees unvalidated input.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/pflag"

	"github.com/radarkit/coordtran"
	"github.com/radarkit/coordtran/internal/config"
	"github.com/radarkit/coordtran/internal/logging"
)

const (
	g2rDescription = "Convert geodetic coordinates to radar range and bearing."
	g2rUsage       = `Usage: g2r [flags] <lon1> <lat1> <lon2> <lat2>
  All coordinates should be in decimal degrees.
  Output is <range> <bearing>
  with range in kilometers and bearing in decimal degrees,
  or "undetermined" when the bearing has no defined value.`

	r2gDescription = "Convert radar range and bearing to final geodetic coordinates."
	r2gUsage       = `Usage: r2g [flags] <lon1> <lat1> <range> <bearing>
  Coordinates in decimal degrees, range in kilometers, bearing in decimal
  degrees in [0, 360) or "undetermined" (also -1).
  Output is <lon2> <lat2> (decimal degrees).`
)

// command carries what g2r and r2g share once flags and config are loaded.
type command struct {
	name   string
	usage  string
	fs     *pflag.FlagSet
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// setup parses args and loads configuration. It returns the positional
// arguments, or a nil command and an exit code when the run is over.
func setup(name, description, usage string, withSnap bool, args []string, stdout, stderr io.Writer) (*command, []string, int) {
	// errors before configuration is loaded still go through slog
	logger := logging.Setup("warn", "text", stderr)

	fs, opts := newFlagSet(name, withSnap)
	c := &command{name: name, usage: usage, fs: fs, logger: logger, stdout: stdout, stderr: stderr}

	positional, err := parseArgs(fs, args)
	if err != nil {
		c.fail(err, true)
		return nil, nil, 1
	}
	if opts.help {
		fmt.Fprintf(stdout, "%s\n\n", description)
		c.printUsage(stdout)
		return nil, nil, 0
	}

	cfg, err := config.Load(fs)
	if err != nil {
		c.fail(err, false)
		return nil, nil, 1
	}
	c.cfg = cfg
	c.logger = logging.Setup(cfg.Log.Level, cfg.Log.Format, stderr)

	if len(positional) != 4 {
		c.fail(fmt.Errorf("incorrect number of arguments: expected 4, got %d", len(positional)), true)
		return nil, nil, 1
	}
	return c, positional, 0
}

func (c *command) printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s\n\nFlags:\n%s\n", c.usage, c.fs.FlagUsages())
}

func (c *command) fail(err error, showUsage bool) {
	c.logger.Error(c.name+" failed", "err", err)
	if showUsage {
		c.printUsage(c.stderr)
	}
}

// RunG2R runs the g2r command and returns the process exit code.
func RunG2R(args []string, stdout, stderr io.Writer) int {
	c, positional, code := setup("g2r", g2rDescription, g2rUsage, false, args, stdout, stderr)
	if c == nil {
		return code
	}

	vals, err := parseFloats([]string{"lon1", "lat1", "lon2", "lat2"}, positional)
	if err != nil {
		c.fail(err, true)
		return 1
	}
	initial := coordtran.Point{Lon: vals[0], Lat: vals[1]}
	final := coordtran.Point{Lon: vals[2], Lat: vals[3]}
	for _, p := range []coordtran.Point{initial, final} {
		if err := p.Validate(); err != nil {
			c.fail(fmt.Errorf("%w (longitude must be [-180, 180), latitude [-90, 90])", err), false)
			return 1
		}
	}

	rb := coordtran.G2R(initial, final)
	c.logger.Debug("g2r", "initial", initial, "final", final,
		"range_km", rb.RangeKm, "bearing", rb.Bearing)

	out := c.cfg.Output
	err = writeRecord(c.stdout, out, []string{"range_km", "bearing_deg"}, []string{
		formatFloat(rb.RangeKm, out.RangePrecision),
		formatBearing(rb.Bearing, out.BearingPrecision),
	})
	if err != nil {
		c.fail(fmt.Errorf("write output: %w", err), false)
		return 1
	}
	return 0
}

// RunR2G runs the r2g command and returns the process exit code.
func RunR2G(args []string, stdout, stderr io.Writer) int {
	c, positional, code := setup("r2g", r2gDescription, r2gUsage, true, args, stdout, stderr)
	if c == nil {
		return code
	}

	vals, err := parseFloats([]string{"lon1", "lat1", "range"}, positional[:3])
	if err != nil {
		c.fail(err, true)
		return 1
	}
	bearing, err := coordtran.ParseBearing(positional[3])
	if err != nil {
		c.fail(err, true)
		return 1
	}
	initial := coordtran.Point{Lon: vals[0], Lat: vals[1]}
	rangeKm := vals[2]

	if bearing.IsUndetermined() {
		rangeKm = c.snapPoleToPole(initial, rangeKm)
	} else if rangeKm == 0 {
		c.logger.Warn("input range is zero, input bearing has no effect", "bearing", bearing)
	}

	final, err := coordtran.R2G(initial, coordtran.RangeBearing{RangeKm: rangeKm, Bearing: bearing})
	if err != nil {
		c.fail(err, false)
		return 1
	}
	c.logger.Debug("r2g", "initial", initial, "range_km", rangeKm,
		"bearing", bearing, "final", final)

	out := c.cfg.Output
	err = writeRecord(c.stdout, out, []string{"lon_deg", "lat_deg"}, []string{
		formatLon(final.Lon, out.CoordPrecision),
		formatFloat(final.Lat, out.CoordPrecision),
	})
	if err != nil {
		c.fail(fmt.Errorf("write output: %w", err), false)
		return 1
	}
	return 0
}

// snapPoleToPole replaces a range within the configured tolerance of the
// pole-to-pole distance with the exact value, since command-line input is
// rarely exact. Only applies from a pole.
func (c *command) snapPoleToPole(initial coordtran.Point, rangeKm float64) float64 {
	half := coordtran.Earth.HalfCircumference()
	if rangeKm == 0 || rangeKm == half || !initial.AtPole() {
		return rangeKm
	}
	if math.Abs(rangeKm-half) < c.cfg.R2G.SnapToleranceKm {
		c.logger.Debug("snapped range to pole-to-pole distance", "from_km", rangeKm, "to_km", half)
		return half
	}
	return rangeKm
}
