// svg.go — game-tree diagram export via svgo.

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/core"
)

// Diagram geometry. Leaves sit hSpacing apart on the bottom level; every
// parent is centered over its children.
const (
	hSpacing   = 90
	vSpacing   = 110
	nodeRadius = 18
	margin     = 60
)

const (
	nodeStyle      = "fill:white;stroke:black;stroke-width:2"
	edgeStyle      = "stroke:black;stroke-width:1"
	labelStyle     = "text-anchor:middle;font-size:12px;font-family:sans-serif"
	edgeLabelStyle = "text-anchor:middle;font-size:11px;font-family:sans-serif;fill:#444444"
)

// TreeExporter draws a game tree as an SVG document. Construct with
// NewTreeExporter.
type TreeExporter struct {
	log    zerolog.Logger
	naming *NamingService
	dir    string
}

// TreeOption tunes a TreeExporter.
type TreeOption func(*TreeExporter)

// WithTreeLogger installs a zerolog.Logger for export events.
func WithTreeLogger(log zerolog.Logger) TreeOption {
	return func(e *TreeExporter) { e.log = log }
}

// WithTreeNaming overrides the naming service.
func WithTreeNaming(n *NamingService) TreeOption {
	return func(e *TreeExporter) { e.naming = n }
}

// NewTreeExporter returns an exporter writing diagrams under dir.
func NewTreeExporter(dir string, opts ...TreeOption) *TreeExporter {
	e := &TreeExporter{
		log:    zerolog.Nop(),
		naming: NewNamingService(),
		dir:    dir,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExportSVG writes the diagram and returns the path actually written.
func (e *TreeExporter) ExportSVG(g *core.Game) (string, error) {
	if g == nil {
		return "", core.Domainf(core.ErrComputation,
			"Load or build a game first.", "ExportSVG: nil game")
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create directory %s: %w", e.dir, err)
	}

	base := e.naming.FileName(len(g.Players()), g.NumRounds, g.Branching, "Tree")
	path, err := e.naming.ResolveConflict(filepath.Join(e.dir, base+".svg"))
	if err != nil {
		return "", err
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	defer out.Close()

	if err = RenderSVG(g, out); err != nil {
		return "", err
	}

	e.log.Info().Str("path", path).Msg("tree diagram exported")

	return path, nil
}

// RenderSVG draws the tree of g onto w as a complete SVG document.
func RenderSVG(g *core.Game, w io.Writer) error {
	root, err := g.Root()
	if err != nil {
		return err
	}

	// 1. Position every scenario: leaves left to right, parents centered.
	xs := make(map[int]int, len(g.Scenarios()))
	nextLeafX := margin
	maxDepth := 0
	var place func(id int) (int, error)
	place = func(id int) (int, error) {
		s, serr := g.ScenarioByID(id)
		if serr != nil {
			return 0, serr
		}
		if s.Depth > maxDepth {
			maxDepth = s.Depth
		}

		if len(s.Children) == 0 {
			x := nextLeafX
			nextLeafX += hSpacing
			xs[id] = x

			return x, nil
		}

		sum := 0
		for _, child := range s.Children {
			cx, cerr := place(child)
			if cerr != nil {
				return 0, cerr
			}
			sum += cx
		}
		x := sum / len(s.Children)
		xs[id] = x

		return x, nil
	}
	if _, err = place(root.ID); err != nil {
		return err
	}

	width := nextLeafX - hSpacing + margin
	height := (maxDepth+1)*vSpacing + margin

	canvas := svg.New(w)
	canvas.Start(width, height)

	// 2. Edges below nodes, labels at the midpoint.
	for _, a := range g.Actions() {
		origin, oerr := g.ScenarioByID(a.Origin)
		if oerr != nil {
			return oerr
		}
		dest, derr := g.ScenarioByID(a.Destination)
		if derr != nil {
			return derr
		}

		x1, y1 := xs[origin.ID], nodeY(origin.Depth)
		x2, y2 := xs[dest.ID], nodeY(dest.Depth)
		canvas.Line(x1, y1, x2, y2, edgeStyle)

		label := a.Label
		if a.Probability > 0 {
			label = fmt.Sprintf("%s (%.3f)", a.Label, a.Probability)
		}
		canvas.Text((x1+x2)/2, (y1+y2)/2-4, label, edgeLabelStyle)
	}

	// 3. Nodes on top; terminals get the inner circle.
	for _, s := range g.Scenarios() {
		x, y := xs[s.ID], nodeY(s.Depth)
		canvas.Circle(x, y, nodeRadius, nodeStyle)
		if s.IsTerminal() {
			canvas.Circle(x, y, nodeRadius-4, nodeStyle)
		}
		canvas.Text(x, y+4, s.Label, labelStyle)
	}

	canvas.End()

	return nil
}

func nodeY(depth int) int { return margin/2 + depth*vSpacing + nodeRadius }
