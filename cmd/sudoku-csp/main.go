package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/generator"
	"svw.info/sudoku-csp/internal/hint"
	"svw.info/sudoku-csp/internal/infrastructure/boardfile"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/usecase"
	"svw.info/sudoku-csp/internal/validator"
)

const defaultBoardPath = "board.txt"

type app struct {
	logger     *slog.Logger
	service    *usecase.Service
	stopProf   func()
	levelStr   string
	solverKind string
	verbose    bool
	profiling  bool
	timeout    time.Duration
}

func (a *app) setup(cmd *cobra.Command, args []string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(a.levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if a.verbose {
		lvl = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(a.solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		csp := solver.NewCSPSolver()
		if a.verbose {
			csp.Trace = a.logger
		}
		s = csp
	}

	a.service = usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		boardfile.New(),
	)

	if a.profiling {
		p := profile.Start(profile.ProfilePath("."))
		a.stopProf = p.Stop
	}
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.stopProf != nil {
		a.stopProf()
	}
}

func (a *app) solveCtx() (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(context.Background(), a.timeout)
	}
	return context.Background(), func() {}
}

// boardPath returns the positional argument, or prompts on stdin the way the
// classic board tools do, falling back to a default path.
func (a *app) boardPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	fmt.Printf("Enter board file path (default %s): ", defaultBoardPath)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultBoardPath
	}
	return line
}

func newSolveCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a board, printing the completed grid or a no-solution message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.solveCtx()
			defer cancel()

			b, err := a.service.Load(ctx, a.boardPath(args))
			if err != nil {
				return err
			}
			fmt.Println("Initial board:")
			fmt.Print(b)

			sol, st, err := a.service.Solve(ctx, b)
			switch {
			case errors.Is(err, solver.ErrNoSolution):
				a.logger.Info("search exhausted", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
				fmt.Println("\nNo solution found.")
				return nil
			case err != nil:
				return err
			}
			a.logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
			fmt.Println("\nSolution found!")
			fmt.Print(sol)
			if out != "" {
				return a.service.Save(ctx, out, sol)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the solved board to this file")
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a board for row/column/box conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.solveCtx()
			defer cancel()

			b, err := a.service.Load(ctx, a.boardPath(args))
			if err != nil {
				return err
			}
			ok, conflicts, err := a.service.Validate(ctx, b)
			if err != nil {
				return err
			}
			if !ok {
				names := make([]string, len(conflicts))
				for i, c := range conflicts {
					names[i] = c.String()
				}
				fmt.Printf("Conflicts at %s\n", strings.Join(names, ", "))
				return nil
			}
			fmt.Println("Board is consistent.")
			return nil
		},
	}
}

func newHintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hint [file]",
		Short: "Suggest the next naked or hidden single",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.solveCtx()
			defer cancel()

			b, err := a.service.Load(ctx, a.boardPath(args))
			if err != nil {
				return err
			}
			h, ok, err := a.service.Hint(ctx, b)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("No single available; the board needs search.")
				return nil
			}
			fmt.Println(h.Message)
			return nil
		},
	}
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		seed    int64
		diffStr string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.solveCtx()
			defer cancel()

			diff, err := domain.ParseDifficulty(diffStr)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			p, st, err := a.service.Generate(ctx, seed, diff)
			if err != nil {
				return err
			}
			a.logger.Info("generated", "seed", seed, "difficulty", diff.String(),
				"nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
			fmt.Print(p)
			if out != "" {
				return a.service.Save(ctx, out, p)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&diffStr, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the puzzle to this file")
	return cmd
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "sudoku-csp",
		Short:             "Constraint-propagation Sudoku solver (AC-3 + backtracking search)",
		PersistentPreRun:  a.setup,
		PersistentPostRun: a.teardown,
		SilenceUsage:      true,
	}
	root.PersistentFlags().StringVar(&a.levelStr, "log-level", "info", "debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.solverKind, "solver", "csp", "solver to use: csp|backtrack")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace each committed assignment")
	root.PersistentFlags().BoolVar(&a.profiling, "profile", false, "write a CPU profile to the working directory")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "abort the solve after this duration (0 = no limit)")

	root.AddCommand(
		newSolveCommand(a),
		newValidateCommand(a),
		newHintCommand(a),
		newGenerateCommand(a),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
