// excel.go — six-sheet xlsx workbook export via excelize.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/equilibrium"
)

// ExcelExporter writes a complete game to an xlsx workbook. Construct with
// NewExcelExporter.
type ExcelExporter struct {
	log    zerolog.Logger
	naming *NamingService
	dir    string
}

// ExporterOption tunes an exporter.
type ExporterOption func(*ExcelExporter)

// WithExportLogger installs a zerolog.Logger for export events.
func WithExportLogger(log zerolog.Logger) ExporterOption {
	return func(e *ExcelExporter) { e.log = log }
}

// WithNaming overrides the naming service.
func WithNaming(n *NamingService) ExporterOption {
	return func(e *ExcelExporter) { e.naming = n }
}

// NewExcelExporter returns an exporter writing workbooks under dir.
func NewExcelExporter(dir string, opts ...ExporterOption) *ExcelExporter {
	e := &ExcelExporter{
		log:    zerolog.Nop(),
		naming: NewNamingService(),
		dir:    dir,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExportGame writes the six-sheet workbook (Configuration, Probabilities,
// Histories, Utilities, Equilibria, Summary) and returns the path actually
// written, which may carry a conflict suffix.
func (e *ExcelExporter) ExportGame(g *core.Game, profiles []*equilibrium.Profile) (string, error) {
	if g == nil {
		return "", core.Domainf(core.ErrComputation,
			"Load or build a game first.", "ExportGame: nil game")
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create directory %s: %w", e.dir, err)
	}

	base := e.naming.FileName(len(g.Players()), g.NumRounds, g.Branching, "Game")
	path, err := e.naming.ResolveConflict(filepath.Join(e.dir, base+".xlsx"))
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err = e.writeConfiguration(f, g); err != nil {
		return "", err
	}
	if err = e.writeProbabilities(f, g); err != nil {
		return "", err
	}
	if err = e.writeHistories(f, g); err != nil {
		return "", err
	}
	if err = e.writeUtilities(f, g); err != nil {
		return "", err
	}
	if err = e.writeEquilibria(f, profiles); err != nil {
		return "", err
	}
	if err = e.writeSummary(f, g, profiles); err != nil {
		return "", err
	}

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("export: drop default sheet: %w", err)
	}
	if err = f.SaveAs(path); err != nil {
		return "", fmt.Errorf("export: save %s: %w", path, err)
	}

	e.log.Info().Str("path", path).Msg("workbook exported")

	return path, nil
}

// writeRows creates the sheet and fills consecutive rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: create sheet %s: %w", sheet, err)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("export: cell (%d,%d): %w", c+1, r+1, err)
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	return nil
}

func (e *ExcelExporter) writeConfiguration(f *excelize.File, g *core.Game) error {
	decision := 0
	for _, s := range g.Scenarios() {
		if !s.IsTerminal() {
			decision++
		}
	}

	rows := [][]interface{}{
		{"Parameter", "Value"},
		{"Players", len(g.Players())},
		{"Rounds", len(g.Rounds())},
		{"Branching factor", g.Branching},
		{"Decision scenarios", decision},
		{"Actions", len(g.Actions())},
		{"Histories", len(g.Histories())},
		{"Created at", g.CreatedAt.Format(time.RFC3339)},
	}
	if err := writeRows(f, "Configuration", rows); err != nil {
		return err
	}

	return f.SetColWidth("Configuration", "A", "B", 25)
}

func (e *ExcelExporter) writeProbabilities(f *excelize.File, g *core.Game) error {
	rows := [][]interface{}{
		{"#", "Scenario id", "Scenario", "Action id", "Action", "Probability"},
	}
	counter := 1
	for _, s := range g.Scenarios() {
		if s.IsTerminal() {
			continue
		}
		for _, aid := range g.Adjacency(s.ID) {
			a, err := g.ActionByID(aid)
			if err != nil {
				return err
			}
			rows = append(rows, []interface{}{
				counter, s.ID, s.Label, a.ID, a.Label, a.Probability,
			})
			counter++
		}
	}
	if err := writeRows(f, "Probabilities", rows); err != nil {
		return err
	}

	return f.SetColWidth("Probabilities", "A", "F", 14)
}

func (e *ExcelExporter) writeHistories(f *excelize.File, g *core.Game) error {
	rows := [][]interface{}{
		{"History id", "Action sequence", "Probability factors", "Total probability", "Actions"},
	}
	for _, h := range g.Histories() {
		labels := make([]string, 0, len(h.Actions))
		factors := make([]string, 0, len(h.Actions))
		for _, aid := range h.Actions {
			a, err := g.ActionByID(aid)
			if err != nil {
				return err
			}
			labels = append(labels, a.Label)
			factors = append(factors, fmt.Sprintf("(%.2f)", a.Probability))
		}
		rows = append(rows, []interface{}{
			h.ID,
			strings.Join(labels, " -> "),
			strings.Join(factors, "*"),
			h.TotalProbability,
			len(h.Actions),
		})
	}
	if err := writeRows(f, "Histories", rows); err != nil {
		return err
	}

	return f.SetColWidth("Histories", "A", "E", 20)
}

func (e *ExcelExporter) writeUtilities(f *excelize.File, g *core.Game) error {
	rows := [][]interface{}{
		{"Payoff id", "History id", "History probability", "Player", "Value", "Expected utility"},
	}
	for _, p := range g.Payoffs() {
		prob := 0.0
		if h, err := g.HistoryByID(p.HistoryID); err == nil {
			prob = h.TotalProbability
		}
		rows = append(rows, []interface{}{
			p.ID, p.HistoryID, prob, fmt.Sprintf("J%d", p.PlayerID), p.Value, p.ExpectedUtility,
		})
	}
	if err := writeRows(f, "Utilities", rows); err != nil {
		return err
	}

	return f.SetColWidth("Utilities", "A", "F", 18)
}

func (e *ExcelExporter) writeEquilibria(f *excelize.File, profiles []*equilibrium.Profile) error {
	if len(profiles) == 0 {
		return writeRows(f, "Equilibria", [][]interface{}{{"No equilibria found."}})
	}

	rows := make([][]interface{}, 0, len(profiles)*8)
	for i, p := range profiles {
		rows = append(rows,
			[]interface{}{fmt.Sprintf("Subgame-perfect equilibrium %d of %d", i+1, len(profiles))},
			[]interface{}{"Round", "Player", "Scenario", "Action", "Destination", "Payoffs"},
		)
		for _, step := range p.Steps {
			rows = append(rows, []interface{}{
				step.Round, step.PlayerLabel, step.Scenario, step.Action,
				step.Destination, paymentsString(p.PlayerLabels, step.Payoffs),
			})
		}
		rows = append(rows,
			[]interface{}{"Full history", p.FullHistory},
			[]interface{}{"Final payments", paymentsString(p.PlayerLabels, p.FinalPayments)},
			[]interface{}{},
		)
	}
	if err := writeRows(f, "Equilibria", rows); err != nil {
		return err
	}

	return f.SetColWidth("Equilibria", "A", "F", 16)
}

func (e *ExcelExporter) writeSummary(f *excelize.File, g *core.Game, profiles []*equilibrium.Profile) error {
	totalExpected := 0.0
	for _, p := range g.Payoffs() {
		totalExpected += p.ExpectedUtility
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Players", len(g.Players())},
		{"Rounds", len(g.Rounds())},
		{"Branching factor", g.Branching},
		{"Scenarios", len(g.Scenarios())},
		{"Actions", len(g.Actions())},
		{"Histories", len(g.Histories())},
		{"Payoffs", len(g.Payoffs())},
		{"Total expected utility", totalExpected},
		{"Equilibria", len(profiles)},
	}
	if err := writeRows(f, "Summary", rows); err != nil {
		return err
	}

	return f.SetColWidth("Summary", "A", "B", 28)
}

// paymentsString renders "J1: 3.00, J2: 1.00" in player order.
func paymentsString(labels []string, payments map[string]float64) string {
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s: %.2f", label, payments[label]))
	}

	return strings.Join(parts, ", ")
}
