package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/sparse"
)

// binaryOp combines two loaded operands. notes are printed before the result.
type binaryOp func(a, b *sparse.Matrix) (result *sparse.Matrix, notes []string, err error)

func newAddCmd() *cobra.Command {
	return newBinaryCmd("add", "Add two matrices",
		`Add matrix B to matrix A. Both must have the same dimensions.

Examples:
  sparsemat add a.txt b.txt            # writes result_a_b.txt
  sparsemat add a.txt b.txt -o sum.txt # writes sum.txt`,
		func(a, b *sparse.Matrix) (*sparse.Matrix, []string, error) {
			m, err := a.Add(b)
			return m, nil, err
		})
}

func newSubCmd() *cobra.Command {
	return newBinaryCmd("sub", "Subtract two matrices",
		`Subtract matrix B from matrix A. Both must have the same dimensions.`,
		func(a, b *sparse.Matrix) (*sparse.Matrix, []string, error) {
			m, err := a.Sub(b)
			return m, nil, err
		})
}

func newMulCmd() *cobra.Command {
	return newBinaryCmd("mul", "Multiply two matrices",
		`Multiply matrix A by matrix B.

If A's column count differs from B's row count but equals B's column count,
B is transposed first and the product A x B^T is computed instead. The
command reports when that happens.`,
		func(a, b *sparse.Matrix) (*sparse.Matrix, []string, error) {
			m, plan, err := a.Mul(b, sparse.WithLogger(logger))
			if err != nil {
				return nil, nil, err
			}
			return m, plan.Diagnostics(), nil
		})
}

func newBinaryCmd(name, short, long string, op binaryOp) *cobra.Command {
	c := &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(cmd, args, op)
		},
	}
	addResultFlags(c)

	return c
}

func newTransposeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "transpose A",
		Short: "Transpose a matrix",
		Long: `Transpose matrix A, swapping its rows and columns.

Examples:
  sparsemat transpose a.txt   # writes result_a.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runTranspose,
	}
	addResultFlags(c)

	return c
}

func addResultFlags(c *cobra.Command) {
	c.Flags().StringP("out", "o", "", "result file (default <output.dir>/<prefix>_<inputs>.txt)")
	c.Flags().BoolP("print", "p", false, "print the result")
	c.Flags().String("format", "", "print format: triplets or table (default output.format)")
}

// runBinary handles add, sub and mul.
func runBinary(cmd *cobra.Command, args []string, op binaryOp) error {
	a, err := loadOperand(cmd, args[0])
	if err != nil {
		return err
	}
	b, err := loadOperand(cmd, args[1])
	if err != nil {
		return err
	}

	result, notes, err := op(a, b)
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", cmd.Name(), args[0], args[1], err)
	}
	for _, n := range notes {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}

	return finishResult(cmd, result, args...)
}

// runTranspose handles the transpose command.
func runTranspose(cmd *cobra.Command, args []string) error {
	a, err := loadOperand(cmd, args[0])
	if err != nil {
		return err
	}

	return finishResult(cmd, a.Transpose(), args[0])
}

// loadOperand reads one input file and reports its size.
func loadOperand(cmd *cobra.Command, name string) (*sparse.Matrix, error) {
	m, err := sparse.Load(resolveInput(name),
		sparse.WithLogger(logger),
		sparse.WithHeaderOffset(cfg.Input.HeaderOffset),
	)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, m.Info())

	return m, nil
}

// finishResult saves the result, then prints it when --print is set.
func finishResult(cmd *cobra.Command, result *sparse.Matrix, inputs ...string) error {
	out, _ := cmd.Flags().GetString("out")
	path := resultPath(out, inputs...)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := result.Save(path); err != nil {
		return err
	}
	logger.Info("saved result",
		zap.String("path", path),
		zap.Stringer("shape", result.Shape()),
		zap.Int("nnz", result.NNZ()),
	)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "result: %s\n", result.Info())
	fmt.Fprintf(w, "saved to %s\n", path)

	if show, _ := cmd.Flags().GetBool("print"); !show {
		return nil
	}
	format, err := printFormat(cmd)
	if err != nil {
		return err
	}

	return renderMatrix(w, "result", result, format)
}

// printFormat returns --format if given, else output.format.
func printFormat(cmd *cobra.Command) (config.OutputFormat, error) {
	f, _ := cmd.Flags().GetString("format")
	if f == "" {
		return cfg.Output.Format, nil
	}
	return config.ParseOutputFormat(f)
}
