package cmd

import (
	"cmmgen/grammar"
	"github.com/spf13/cobra"
)

var enumOpts struct {
	spec string
	out  string
}

func init() {
	enumCmd.Flags().StringVar(&enumOpts.spec, "spec", grammar.DefaultSpec, "Grammar specification")
	enumCmd.Flags().StringVar(&enumOpts.out, "out", grammar.DefaultOutput, "Generated header")
	rootCmd.AddCommand(enumCmd)
}

var enumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Generate the symbol index enum from the grammar specification",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := grammar.Generate(enumOpts.spec, enumOpts.out)
		return err
	},
}
