// mensura - dimensional quantity CLI
//
// Inspect the unit catalog, validate unit definition files, and convert
// values between registered units.
package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/environment"
	"github.com/mensura/mensura/physical"
)

var baseSymbols = [dims.N]string{"kg", "m", "s", "A", "cd", "K", "mol"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mensura:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var defsFile string

	root := &cobra.Command{
		Use:   "mensura",
		Short: "Dimensionally checked unit arithmetic",
		Long: heredoc.Doc(`
			mensura inspects and exercises the unit catalog backing the
			quantity library: list the registered units, validate a user
			definition file, or convert a value between two registered
			units of the same dimension.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&defsFile, "defs", "", "unit definition file (YAML or JSON) merged over the builtin catalog")

	root.AddCommand(newUnitsCmd(&defsFile))
	root.AddCommand(newEnvCmd())
	root.AddCommand(newConvertCmd(&defsFile))
	return root
}

// loadEnv returns the builtin environment, extended with a definition
// file when one was given.
func loadEnv(defsFile string) (*environment.Environment, error) {
	env := environment.Builtin()
	if defsFile == "" {
		return env, nil
	}
	units, err := environment.LoadFile(defsFile)
	if err != nil {
		return nil, err
	}
	return env.Extend(units...)
}

func newUnitsCmd(defsFile *string) *cobra.Command {
	var dimOf string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the registered units",
		Long: heredoc.Doc(`
			List every unit in the catalog, with its kind, conversion
			factor and dimension vector. With --dim, list only the units
			sharing a named unit's dimension (the alternatives a quantity
			of that dimension can convert to).
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(*defsFile)
			if err != nil {
				return err
			}

			basis := env.Basis()
			if dimOf != "" {
				u, ok := env.Lookup(dimOf)
				if !ok {
					return fmt.Errorf("unknown unit %q", dimOf)
				}
				basis = []dims.Dimensions{u.Dimension}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tKIND\tFACTOR\tDIMENSION")
			for _, d := range basis {
				for _, u := range env.Units(d) {
					fmt.Fprintf(w, "%s\t%s\t%g\t%v\n", u.Symbol, u.Kind, u.Factor, u.Dimension)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&dimOf, "dim", "", "list only units sharing this unit's dimension")
	return cmd
}

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Work with unit definition files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check FILE",
		Short: "Validate a unit definition file",
		Long: heredoc.Doc(`
			Parse a YAML or JSON unit definition file and verify it merges
			cleanly over the builtin catalog (no malformed dimensions or
			factors, no duplicate symbols).
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := environment.LoadFile(args[0])
			if err != nil {
				return err
			}
			merged, err := environment.Builtin().Extend(units...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d units, %d after merge\n",
				args[0], len(units), merged.Len())
			return nil
		},
	})
	return cmd
}

func newConvertCmd(defsFile *string) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between units of one dimension",
		Long: heredoc.Doc(`
			Convert a value expressed in one registered unit into another
			unit of the same dimension. Both units are looked up in the
			catalog by symbol; the seven SI base symbols always work.

			    mensura convert 2500 lb kip
			    mensura convert 1 mi ft
		`),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %v", args[0], err)
			}
			env, err := loadEnv(*defsFile)
			if err != nil {
				return err
			}
			q, err := env.Quantity(value, args[1])
			if err != nil {
				return err
			}
			out, err := convertTo(q, args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Round(precision))
			return nil
		},
	}
	cmd.Flags().IntVar(&precision, "precision", physical.DefaultPrecision, "decimal places in the result")
	return cmd
}

// convertTo rescales q to a target symbol; a base-unit symbol means
// coherent SI display.
func convertTo(q physical.Quantity, symbol string) (physical.Quantity, error) {
	for i, sym := range baseSymbols {
		if sym == symbol {
			if !q.Dims().Equal(dims.Base(i)) {
				return physical.Quantity{}, fmt.Errorf("convert %s to %s: %w", q, symbol, physical.ErrDimensionMismatch)
			}
			return q.SI(), nil
		}
	}
	return q.To(symbol)
}
