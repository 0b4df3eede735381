// Package main provides the hellotensor CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/hellotensor/internal/demo"
)

const version = "v0.1.0"

func newRootCmd() *cobra.Command {
	var (
		variant string
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "hellotensor",
		Short: "Generate a random 3x3 tensor and print its gonum conversion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := demo.ParseVariant(variant)
			if err != nil {
				return err
			}

			cfg := demo.Config{
				Variant: v,
				Seed:    seed,
				HasSeed: cmd.Flags().Changed("seed"),
			}
			return demo.New(cfg).Run(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&variant, "variant", string(demo.VariantBasic),
		"collaborator set to load: basic, science, or frames")
	cmd.Flags().Uint64Var(&seed, "seed", 0,
		"seed the random source for reproducible output")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hellotensor %s\n", version)
		},
	}
}

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
