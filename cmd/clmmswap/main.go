// Command clmmswap is a demo harness around the concentrated-liquidity swap
// core: it loads a pool + tick-array + adaptive-fee snapshot from a YAML
// fixture and prints the PostSwapUpdate for a one-off trade. It does not
// route, persist, or serve anything - that's the caller's job, per spec §1.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "clmmswap",
		Short: "Evaluate adaptive-fee concentrated-liquidity swap fixtures",
	}
	root.PersistentFlags().String("config", "", "path to a YAML fixture (overrides CLMMSWAP_CONFIG)")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	v.SetEnvPrefix("CLMMSWAP")
	v.AutomaticEnv()

	root.AddCommand(newQuoteCmd(v))
	return root
}

func newQuoteCmd(v *viper.Viper) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Run a single swap against a fixture and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("config")
			if path == "" {
				return fmt.Errorf("a fixture path is required: pass --config or set CLMMSWAP_CONFIG")
			}
			return runQuote(path, verbose)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log each swap step and tick crossing")
	return cmd
}
