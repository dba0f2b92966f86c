package cmd

import (
	"cmmgen/pattern"
	"github.com/spf13/cobra"
)

var patternOpts struct {
	template string
	out      string
}

func init() {
	patternCmd.Flags().StringVar(&patternOpts.template, "template", pattern.DefaultTemplate, "Lexer rule template")
	patternCmd.Flags().StringVar(&patternOpts.out, "out", "", "Generated lexer rules (default: lexical.l one directory above the template)")
	rootCmd.AddCommand(patternCmd)
}

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Expand the lexer rule template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := patternOpts.out
		if out == "" {
			out = pattern.DefaultOutput(patternOpts.template)
		}

		_, err := pattern.Generate(patternOpts.template, out)
		return err
	},
}
