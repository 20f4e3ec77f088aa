// console.go — menu loop and handlers for the interactive session.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gametree/builder"
	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/equilibrium"
	"github.com/katalvlaran/gametree/export"
	"github.com/katalvlaran/gametree/histories"
	"github.com/katalvlaran/gametree/probability"
	"github.com/katalvlaran/gametree/session"
	"github.com/katalvlaran/gametree/utility"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const menu = `
 [1] Create game
 [2] Assign round players
 [3] Assign probabilities
 [4] Register payoffs
 [5] Run analysis
 [6] Show equilibria
 [7] Show session summary
 [8] Export workbook (xlsx)
 [9] Export tree (svg)
[10] Delete game
 [0] Quit
`

type console struct {
	cfg  config
	log  zerolog.Logger
	sess *session.Session
	in   *bufio.Reader
	out  io.Writer

	nextGameID int
}

func newConsole(cfg config, log zerolog.Logger, sess *session.Session, in io.Reader, out io.Writer) *console {
	return &console{
		cfg:        cfg,
		log:        log,
		sess:       sess,
		in:         bufio.NewReader(in),
		out:        out,
		nextGameID: 1,
	}
}

// run drives the menu until the user quits or input ends.
func (c *console) run() error {
	fmt.Fprintln(c.out, titleStyle.Render("gametree — extensive-form game analysis"))

	for {
		fmt.Fprint(c.out, menu)
		choice, err := c.promptLine("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.report(c.createGame())
		case "2":
			c.report(c.assignRoundPlayers())
		case "3":
			c.report(c.assignProbabilities())
		case "4":
			c.report(c.registerPayoffs())
		case "5":
			c.report(c.runAnalysis())
		case "6":
			c.report(c.showEquilibria())
		case "7":
			c.showSummary()
		case "8":
			c.report(c.exportWorkbook())
		case "9":
			c.report(c.exportTree())
		case "10":
			c.report(c.deleteGame())
		case "0", "q":
			fmt.Fprintln(c.out, "Goodbye.")

			return nil
		default:
			fmt.Fprintln(c.out, errorStyle.Render("Unknown option."))
		}
	}
}

// report shows the user-facing message of err, logging the technical one.
func (c *console) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, io.EOF) {
		return
	}
	c.log.Error().Err(err).Msg("operation failed")
	fmt.Fprintln(c.out, errorStyle.Render(core.UserMessage(err)))
}

func (c *console) createGame() error {
	players, err := c.promptInt("Players: ")
	if err != nil {
		return err
	}
	rounds, err := c.promptInt("Rounds: ")
	if err != nil {
		return err
	}
	branching, err := c.promptInt("Branching factor: ")
	if err != nil {
		return err
	}

	// Pre-build estimate so the user can back out of an extreme tree.
	scenarios := builder.TotalScenarios(rounds, branching)
	actions := builder.TotalActions(rounds, branching)
	hists := builder.TotalHistories(rounds, branching)
	level := builder.ComplexityLevel(rounds, branching)
	fmt.Fprintln(c.out, c.renderTable(
		[]string{"Scenarios", "Actions", "Histories", "Complexity"},
		[][]string{{
			strconv.Itoa(scenarios), strconv.Itoa(actions), strconv.Itoa(hists), level,
		}},
	))
	answer, err := c.promptLine("Build this tree? [y/N] ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Fprintln(c.out, "Cancelled.")

		return nil
	}

	g, err := builder.Build(players, rounds, branching,
		builder.WithCeiling(c.cfg.Ceiling),
		builder.WithGameID(c.nextGameID),
		builder.WithLogger(c.log))
	if err != nil {
		return err
	}
	c.nextGameID++

	c.sess.Reset()
	if err = c.sess.SetConfig(session.Config{Players: players, Rounds: rounds, Branching: branching}); err != nil {
		return err
	}
	if err = c.sess.SetGame(g); err != nil {
		return err
	}

	fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf(
		"Game %d built: %d scenarios, %d actions.", g.ID, len(g.Scenarios()), len(g.Actions()))))

	return nil
}

func (c *console) assignRoundPlayers() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}

	for _, r := range g.Rounds() {
		id, perr := c.promptInt(fmt.Sprintf("Active player for round %d: ", r.Number))
		if perr != nil {
			return perr
		}
		if perr = g.SetRoundPlayer(r.Number, id); perr != nil {
			return perr
		}
	}
	fmt.Fprintln(c.out, okStyle.Render("Round players assigned."))

	return nil
}

func (c *console) assignProbabilities() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}

	for _, s := range g.Scenarios() {
		outgoing := g.Adjacency(s.ID)
		if s.IsTerminal() || len(outgoing) == 0 {
			continue
		}

		labels := make([]string, 0, len(outgoing))
		for _, aid := range outgoing {
			a, aerr := g.ActionByID(aid)
			if aerr != nil {
				return aerr
			}
			labels = append(labels, a.Label)
		}
		fmt.Fprintf(c.out, "Scenario %s, actions %s\n", s.Label, strings.Join(labels, ", "))

		values, verr := c.promptFloats(
			fmt.Sprintf("%d probabilities (comma separated): ", len(outgoing)), len(outgoing))
		if verr != nil {
			return verr
		}
		if aerr := probability.Assign(g, outgoing, values, probability.WithLogger(c.log)); aerr != nil {
			// Out-of-range input: offer to scale the entered values by their
			// sum instead of rejecting, never altering individual weights.
			fmt.Fprintln(c.out, errorStyle.Render(core.UserMessage(aerr)))
			scaled, serr := scaleBySum(values)
			if serr != nil {
				return aerr
			}
			answer, perr := c.promptLine("Normalize these values proportionally? [y/N] ")
			if perr != nil {
				return perr
			}
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				return aerr
			}
			if aerr = probability.Assign(g, outgoing, scaled, probability.WithLogger(c.log)); aerr != nil {
				return aerr
			}
		}

		// In-range values may still miss the sum-to-1 tolerance; offer the
		// stored-value normalization for that case.
		ok, verr := probability.Validate(g, s.ID)
		if verr != nil {
			return verr
		}
		if !ok {
			answer, perr := c.promptLine(
				fmt.Sprintf("Distribution at %s does not sum to 1. Normalize? [y/N] ", s.Label))
			if perr != nil {
				return perr
			}
			if strings.EqualFold(strings.TrimSpace(answer), "y") {
				if nerr := probability.Normalize(g, outgoing, probability.WithLogger(c.log)); nerr != nil {
					return nerr
				}
			}
		}
	}

	failing, err := probability.ValidateAll(g)
	if err != nil {
		return err
	}
	if len(failing) > 0 {
		fmt.Fprintln(c.out, errorStyle.Render(
			"Distributions still off at: "+strings.Join(failing, ", ")))

		return nil
	}

	if err = c.sess.SaveProbabilities(probability.Summary(g)); err != nil {
		return err
	}
	fmt.Fprintln(c.out, okStyle.Render("All distributions sum to 1."))

	return nil
}

func (c *console) registerPayoffs() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}

	hs, err := c.ensureHistories(g)
	if err != nil {
		return err
	}

	payoffs := make([]*core.Payoff, 0, len(hs)*len(g.Players()))
	id := len(g.Payoffs()) + 1
	for _, h := range hs {
		fmt.Fprintf(c.out, "History %d: %s\n", h.ID, h.PathString(g))
		for _, p := range g.Players() {
			value, perr := c.promptFloat(fmt.Sprintf("  Payoff for %s: ", p.Label()))
			if perr != nil {
				return perr
			}
			po, perr := core.NewPayoff(id, p.ID, h.ID, value)
			if perr != nil {
				return perr
			}
			if perr = g.AddPayoff(po); perr != nil {
				return perr
			}
			payoffs = append(payoffs, po)
			id++
		}
	}

	if err = c.sess.SavePayoffs(g.Payoffs()); err != nil {
		return err
	}
	fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf("%d payoffs registered.", len(payoffs))))

	return nil
}

// runAnalysis walks the whole pipeline. Prerequisites are checked before
// the game leaves CREATED, so a failed attempt keeps the game startable; a
// game already RUNNING (an earlier attempt failed mid-pipeline) is resumed
// rather than restarted. Completed games surface the transition error.
func (c *console) runAnalysis() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}

	hs, err := c.ensureHistories(g)
	if err != nil {
		return err
	}

	failing, err := probability.ValidateAll(g)
	if err != nil {
		return err
	}
	if len(failing) > 0 {
		return core.Domainf(core.ErrValidation,
			"Assign valid probabilities before the analysis: "+strings.Join(failing, ", "),
			"runAnalysis: invalid distributions at %v", failing)
	}

	if g.State() == core.Created {
		if err = g.Start(); err != nil {
			return err
		}
	} else if g.State() != core.Running {
		return core.Domainf(core.ErrStateTransition,
			"This game has already been analyzed. Build a new one.",
			"runAnalysis: game %d in state %s", g.ID, g.State())
	}

	if err = histories.Recompute(g); err != nil {
		return err
	}

	m, err := utility.Calculate(g, hs, g.Payoffs(), utility.WithLogger(c.log))
	if err != nil {
		return err
	}
	if err = c.sess.SaveUtilities(m); err != nil {
		return err
	}

	profiles, err := equilibrium.FindSPE(g, hs, g.Payoffs(),
		equilibrium.WithLogger(c.log),
		equilibrium.WithMaxProfiles(c.cfg.MaxProfiles))
	if err != nil {
		return err
	}
	if err = c.sess.SaveProfiles(profiles); err != nil {
		return err
	}

	if err = g.Complete(); err != nil {
		return err
	}

	fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf(
		"Analysis complete: %d histories, %dx%d utilities, %d equilibria.",
		len(hs), m.Rows(), m.Cols(), len(profiles))))

	return nil
}

func (c *console) showEquilibria() error {
	profiles := c.sess.Profiles()
	if len(profiles) == 0 {
		return core.Domainf(core.ErrComputation,
			"Run the analysis first.", "showEquilibria: no stored profiles")
	}

	pos := 0
	for {
		fmt.Fprintln(c.out, equilibrium.FormatProfile(profiles[pos], pos+1, len(profiles)))
		fmt.Fprintln(c.out, equilibrium.NavigationHint(pos+1, len(profiles)))

		answer, err := c.promptLine("> ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(answer) {
		case "n":
			if pos < len(profiles)-1 {
				pos++
			}
		case "p":
			if pos > 0 {
				pos--
			}
		case "q":
			return nil
		}
	}
}

func (c *console) showSummary() {
	summary := c.sess.Summary()
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprint(summary[k])})
	}
	fmt.Fprintln(c.out, c.renderTable([]string{"Key", "Value"}, rows))
}

func (c *console) exportWorkbook() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}

	e := export.NewExcelExporter(c.cfg.ExportDir, export.WithExportLogger(c.log))
	path, err := e.ExportGame(g, c.sess.Profiles())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, okStyle.Render("Workbook written: "+path))

	return nil
}

func (c *console) exportTree() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}

	e := export.NewTreeExporter(c.cfg.ExportDir, export.WithTreeLogger(c.log))
	path, err := e.ExportSVG(g)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, okStyle.Render("Tree diagram written: "+path))

	return nil
}

func (c *console) deleteGame() error {
	g, err := c.sess.Game()
	if err != nil {
		return err
	}
	if err = g.Delete(); err != nil {
		return err
	}
	c.sess.Reset()
	fmt.Fprintln(c.out, okStyle.Render("Game deleted, session cleared."))

	return nil
}

// ensureHistories returns the stored histories, enumerating them on first use.
func (c *console) ensureHistories(g *core.Game) ([]*core.History, error) {
	if hs := g.Histories(); len(hs) > 0 {
		return hs, nil
	}

	hs, err := histories.Generate(g, histories.WithLogger(c.log))
	if err != nil {
		return nil, err
	}
	g.SetHistories(hs)
	if err = c.sess.SaveHistories(hs); err != nil {
		return nil, err
	}
	fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf("%d histories generated.", len(hs))))

	return hs, nil
}

func (c *console) renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		String()
}

func (c *console) promptLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (c *console) promptInt(prompt string) (int, error) {
	line, err := c.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, core.Domainf(core.ErrValidation,
			"Enter a whole number.", "promptInt: %q", line)
	}

	return n, nil
}

func (c *console) promptFloat(prompt string) (float64, error) {
	line, err := c.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, core.Domainf(core.ErrValidation,
			"Enter a number.", "promptFloat: %q", line)
	}

	return v, nil
}

func (c *console) promptFloats(prompt string, want int) ([]float64, error) {
	line, err := c.promptLine(prompt)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(line, ",")
	if len(parts) != want {
		return nil, core.Domainf(core.ErrValidation,
			fmt.Sprintf("Enter exactly %d values.", want),
			"promptFloats: got %d values, want %d", len(parts), want)
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		v, perr := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if perr != nil {
			return nil, core.Domainf(core.ErrValidation,
				"Enter numeric values.", "promptFloats: %q", part)
		}
		values[i] = v
	}

	return values, nil
}

// scaleBySum divides each value by the total so proportions survive.
// Negative values and a non-positive sum are not normalizable.
func scaleBySum(values []float64) ([]float64, error) {
	sum := 0.0
	for _, v := range values {
		if v < 0 {
			return nil, core.Domainf(core.ErrValidation,
				"Probabilities cannot be negative.", "scaleBySum: negative value %v", v)
		}
		sum += v
	}
	if sum <= 0 {
		return nil, core.Domainf(core.ErrValidation,
			"The probability values sum to zero.", "scaleBySum: sum %v", sum)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / sum
	}

	return out, nil
}
