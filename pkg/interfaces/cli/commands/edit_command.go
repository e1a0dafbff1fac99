package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/nwcorner/pkg/application/services"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/infrastructure/events"
	"github.com/vsinha/nwcorner/pkg/infrastructure/generator"
	"github.com/vsinha/nwcorner/pkg/interfaces/cli/output"
	"github.com/vsinha/nwcorner/pkg/interfaces/cli/playback"
)

// EditConfig holds configuration for the interactive edit session
type EditConfig struct {
	File     string        // Optional problem file to start from
	Seed     int64         // Seed for the "random" command, 0 = time based
	Interval time.Duration `validate:"gte=0"` // Delay between steps for "animate"
	Verbose  bool
}

// EditCommand runs an interactive session that edits and solves one problem
type EditCommand struct {
	config    EditConfig
	scanner   *bufio.Scanner
	out       io.Writer
	problem   entities.Problem
	service   *services.TransportService
	generator *generator.Generator
	history   *events.InMemoryEventStore
	line      string
	prompt    bool
}

// editSession is the event stream name of the interactive session
const editSession = "edit"

// errQuit ends the session
var errQuit = errors.New("quit")

// NewEditCommand creates a new edit session reading commands from in
func NewEditCommand(config EditConfig, in io.Reader, out io.Writer) *EditCommand {
	genConfig := generator.DefaultConfig()
	genConfig.Seed = config.Seed

	return &EditCommand{
		config:    config,
		scanner:   bufio.NewScanner(in),
		out:       out,
		problem:   entities.DefaultProblem(),
		service:   services.NewTransportService(),
		generator: generator.New(genConfig),
		history:   events.NewInMemoryEventStore(),
	}
}

func newEditCobraCommand() *cobra.Command {
	config := EditConfig{Interval: playback.DefaultInterval}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit and solve a problem interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			edit := NewEditCommand(config, cmd.InOrStdin(), cmd.OutOrStdout())
			edit.prompt = isTerminal(cmd.OutOrStdout())
			return edit.Execute(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&config.File, "file", "f", "", "Problem file to start from (default: built-in example)")
	flags.Int64Var(&config.Seed, "seed", 0, "Random seed for the random command (0 = time based)")
	flags.DurationVar(&config.Interval, "interval", config.Interval, "Delay between steps for the animate command")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// Problem returns the problem as currently edited
func (c *EditCommand) Problem() entities.Problem {
	return c.problem.Clone()
}

// Execute runs the edit session until quit or end of input
func (c *EditCommand) Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validate.Struct(c.config); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.File != "" {
		p, err := LoadProblemFile(c.config.File)
		if err != nil {
			return fmt.Errorf("error loading problem: %w", err)
		}
		c.problem = *p
	}
	source := "default"
	if c.config.File != "" {
		source = "load " + c.config.File
	}
	if err := c.record(events.NewEvent(events.ProblemLoaded, editSession, source, c.problem)); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "North-West Corner editor. Type 'help' for commands.")
	if c.config.Verbose {
		_ = output.WriteProblem(c.out, c.problem)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt {
			fmt.Fprint(c.out, "nwcorner> ")
		}
		if !c.scanner.Scan() {
			return c.scanner.Err()
		}

		line := strings.TrimSpace(c.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.processCommand(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *EditCommand) processCommand(ctx context.Context, line string) error {
	parts := strings.Fields(line)
	command, args := strings.ToLower(parts[0]), parts[1:]
	c.line = line

	switch command {
	case "help", "h":
		c.printHelp()
		return nil
	case "show", "s":
		return output.WriteProblem(c.out, c.problem)
	case "add-supplier":
		return c.apply(c.problem.WithSupplier(), nil)
	case "remove-supplier":
		return c.handleRemove(c.problem.Suppliers(), "supplier", c.problem.WithoutSupplier)
	case "add-consumer":
		return c.apply(c.problem.WithConsumer(), nil)
	case "remove-consumer":
		return c.handleRemove(c.problem.Consumers(), "consumer", c.problem.WithoutConsumer)
	case "suppliers":
		return c.handleResize(args, c.problem.ResizeSuppliers)
	case "consumers":
		return c.handleResize(args, c.problem.ResizeConsumers)
	case "supply":
		return c.handleSetVector(args, c.problem.WithSupply)
	case "demand":
		return c.handleSetVector(args, c.problem.WithDemand)
	case "cost":
		return c.handleSetCost(args)
	case "random":
		return c.apply(c.generator.Generate(), nil)
	case "reset":
		return c.apply(entities.DefaultProblem(), nil)
	case "solve":
		return c.handleSolve(ctx, false)
	case "animate":
		return c.handleSolve(ctx, true)
	case "save":
		return c.handleSave(args)
	case "undo":
		return c.handleUndo()
	case "history":
		return c.handleHistory()
	case "quit", "q", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", command)
	}
}

// apply replaces the current problem and echoes it when verbose
func (c *EditCommand) apply(p entities.Problem, err error) error {
	if err != nil {
		return err
	}
	c.problem = p
	if err := c.record(events.NewEvent(events.ProblemEdited, editSession, c.line, p)); err != nil {
		return err
	}
	if c.config.Verbose {
		return output.WriteProblem(c.out, c.problem)
	}
	fmt.Fprintf(c.out, "OK: %d suppliers, %d consumers\n", c.problem.Suppliers(), c.problem.Consumers())
	return nil
}

func (c *EditCommand) handleRemove(count int, what string, remove func() entities.Problem) error {
	if count <= entities.MinEntries {
		return fmt.Errorf("cannot remove the last %s", what)
	}
	return c.apply(remove(), nil)
}

func (c *EditCommand) handleResize(args []string, resize func(int) (entities.Problem, error)) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: suppliers|consumers <count>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid count %q", args[0])
	}
	return c.apply(resize(n))
}

func (c *EditCommand) handleSetVector(args []string, set func(int, entities.Quantity) (entities.Problem, error)) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: supply|demand <index> <quantity>")
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	q, err := parseNonNegative(args[1])
	if err != nil {
		return err
	}
	return c.apply(set(index, q))
}

func (c *EditCommand) handleSetCost(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: cost <supplier> <consumer> <unit cost>")
	}
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	j, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	q, err := parseNonNegative(args[2])
	if err != nil {
		return err
	}
	return c.apply(c.problem.WithCost(i, j, q))
}

func (c *EditCommand) handleSolve(ctx context.Context, animate bool) error {
	result, err := c.service.SolveNamed(ctx, "session", c.problem)
	if err != nil {
		return err
	}

	if err := c.record(events.NewSolvedEvent(editSession, c.problem, result.Solution.TotalCost)); err != nil {
		return err
	}

	if animate {
		solution := result.Solution
		player := playback.NewPlayer(c.config.Interval)
		err := player.Play(ctx, solution.Steps, func(i int, step entities.Step) error {
			return output.RenderStep(c.out, solution.Problem, i, step)
		})
		if err != nil {
			return err
		}
	}

	return output.WriteReport(c.out, result)
}

func (c *EditCommand) handleSave(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save <file.csv|file.yaml>")
	}
	if err := WriteProblemFile(args[0], formatForPath(args[0]), c.problem); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "💾 Problem saved to: %s\n", args[0])
	return nil
}

func (c *EditCommand) handleUndo() error {
	history, err := c.history.ReadEvents(editSession, 1)
	if err != nil {
		return err
	}
	previous, ok := events.UndoTarget(history)
	if !ok {
		return fmt.Errorf("nothing to undo")
	}

	c.problem = previous
	if err := c.record(events.NewEvent(events.ProblemUndone, editSession, "undo", previous)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "OK: %d suppliers, %d consumers\n", c.problem.Suppliers(), c.problem.Consumers())
	return nil
}

func (c *EditCommand) handleHistory() error {
	history, err := c.history.ReadEvents(editSession, 1)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "=== Session History (%d events) ===\n", len(history))
	for _, e := range history {
		fmt.Fprintf(c.out, "%3d [%s] %-15s %-25s %dx%d",
			e.Version, e.Time.Format("15:04:05"), e.Type, e.Command,
			e.Problem.Suppliers(), e.Problem.Consumers())
		if e.TotalCost != nil {
			fmt.Fprintf(c.out, " total cost %s", e.TotalCost)
		}
		fmt.Fprintln(c.out)
	}
	return nil
}

func (c *EditCommand) record(e events.Event) error {
	if _, err := c.history.AppendEvent(e); err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Type, err)
	}
	return nil
}

// parseIndex converts a 1-based label index into a 0-based one
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimLeft(strings.ToUpper(s), "SC"))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return n - 1, nil
}

func parseNonNegative(s string) (entities.Quantity, error) {
	q, err := entities.ParseQuantity(s)
	if err != nil {
		return entities.ZeroQuantity, err
	}
	if q.IsNegative() {
		return entities.ZeroQuantity, fmt.Errorf("%s: %w", s, entities.ErrNegativeValue)
	}
	return q, nil
}

func (c *EditCommand) printHelp() {
	fmt.Fprint(c.out, `Commands:
  show                          Print the problem
  add-supplier | remove-supplier
  add-consumer | remove-consumer
  suppliers <n> | consumers <n> Resize to n entries (1-10)
  supply <i> <quantity>         Set what supplier i offers (S1 = 1)
  demand <j> <quantity>         Set what consumer j requires (C1 = 1)
  cost <i> <j> <unit cost>      Set the unit cost of route i -> j
  random                        Replace the problem with a random one
  reset                         Restore the built-in example
  solve                         Solve and print the report
  animate                       Solve, reveal the steps, then print the report
  save <file>                   Write the problem as CSV or YAML
  undo                          Revert the last change
  history                       List the changes made in this session
  quit
`)
}
