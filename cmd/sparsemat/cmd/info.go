package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/sparse"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Show dimensions and non-zero counts",
		Long: `Load each file and print its dimensions and number of non-zero elements.
Files that fail to load are reported and the remaining files are still read.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInfo,
	}
}

// runInfo handles the info command.
func runInfo(cmd *cobra.Command, args []string) error {
	var errs []error
	for _, name := range args {
		if _, err := loadOperand(cmd, name); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func newShowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a matrix",
		Long: `Print a matrix as a dense table or in its triplet file form.

Examples:
  sparsemat show a.txt                    # table (default output.format)
  sparsemat show a.txt --format triplets`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	c.Flags().String("format", "", "print format: triplets or table (default output.format)")

	return c
}

// runShow handles the show command.
func runShow(cmd *cobra.Command, args []string) error {
	format, err := printFormat(cmd)
	if err != nil {
		return err
	}

	m, err := sparse.Load(resolveInput(args[0]),
		sparse.WithLogger(logger),
		sparse.WithHeaderOffset(cfg.Input.HeaderOffset),
	)
	if err != nil {
		return err
	}

	return renderMatrix(cmd.OutOrStdout(), args[0], m, format)
}
