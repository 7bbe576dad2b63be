package projection

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"reprojection-api/internal/models"

	proj "github.com/pebbe/proj/v5"
)

// epsgPattern matches an authority:code identifier such as "EPSG:4326".
var epsgPattern = regexp.MustCompile(`^(?i:epsg):([0-9]{1,7})$`)

// Engine performs CRS-to-CRS conversion through the PROJ library. Every call
// builds its own PROJ context and transformation, so invocations are
// independent and safe for concurrent callers.
type Engine struct{}

// NewEngine creates a new projection engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Project converts points from the source CRS to the target CRS. Input
// points carry (longitude, latitude) in degrees in X and Y; output points
// carry (easting, northing) in the target CRS's linear unit. The whole batch
// succeeds or fails as one: no point is ever dropped or replaced with a
// placeholder value. Row numbers on failures are 1-based over the batch.
func (e *Engine) Project(ctx context.Context, sourceCRS, targetCRS string, points []models.Point) ([]models.Point, error) {
	definition, err := pipelineDefinition(sourceCRS, targetCRS)
	if err != nil {
		return nil, err
	}

	pctx := proj.NewContext()
	defer pctx.Close()

	pj, err := pctx.Create(definition)
	if err != nil {
		return nil, &models.ConversionError{
			Kind:   models.InvalidCrsIdentifier,
			Detail: fmt.Sprintf("CRS pair %q -> %q rejected by PROJ: %v", sourceCRS, targetCRS, err),
			Err:    err,
		}
	}
	defer pj.Close()

	out := make([]models.Point, len(points))
	for i, p := range points {
		u, v, _, _, err := pj.Trans(proj.Fwd, p.X, p.Y, 0, 0)
		if err != nil {
			return nil, &models.ConversionError{
				Kind:   models.ProjectionFailure,
				Detail: fmt.Sprintf("row %d (x=%v, y=%v): %v", i+1, p.X, p.Y, err),
				Rows:   []int{i + 1},
				Err:    err,
			}
		}
		out[i] = models.Point{X: u, Y: v}
	}
	return out, nil
}

// Check projects a known point through a well-known CRS pair, verifying at
// startup that the PROJ library and its resource files are usable.
func (e *Engine) Check(ctx context.Context) error {
	pts, err := e.Project(ctx, "EPSG:4326", "EPSG:3857", []models.Point{{X: 0, Y: 0}})
	if err != nil {
		return fmt.Errorf("projection: self-test failed: %w", err)
	}
	if math.Abs(pts[0].X) > 1e-6 || math.Abs(pts[0].Y) > 1e-6 {
		return fmt.Errorf("projection: self-test produced unexpected result (%v, %v)", pts[0].X, pts[0].Y)
	}
	return nil
}

// pipelineDefinition builds the PROJ transformation pipeline for a CRS pair:
// degree input is converted to radians, interpreted as geographic
// coordinates of the source CRS, then projected into the target CRS. Output
// units are whatever the target CRS defines; the target is expected to be a
// projected CRS.
func pipelineDefinition(sourceCRS, targetCRS string) (string, error) {
	src, err := crsFragment(sourceCRS)
	if err != nil {
		return "", err
	}
	tgt, err := crsFragment(targetCRS)
	if err != nil {
		return "", err
	}
	return "+proj=pipeline " +
		"+step +proj=unitconvert +xy_in=deg +xy_out=rad " +
		"+step +inv " + src + " " +
		"+step " + tgt, nil
}

// crsFragment normalizes a CRS identifier into a pipeline step fragment.
// Accepted forms are "EPSG:<code>" (any case) and a raw proj definition
// starting with "+". Anything else is rejected before reaching the engine.
func crsFragment(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if strings.HasPrefix(trimmed, "+") {
		return trimmed, nil
	}
	if m := epsgPattern.FindStringSubmatch(trimmed); m != nil {
		return "+init=epsg:" + m[1], nil
	}
	return "", &models.ConversionError{
		Kind:   models.InvalidCrsIdentifier,
		Detail: fmt.Sprintf("unrecognized CRS identifier %q (expected EPSG:<code> or a proj definition)", id),
	}
}
