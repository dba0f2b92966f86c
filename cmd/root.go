package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var level string

func init() {
	rootCmd.PersistentFlags().StringVar(&level, "log", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")
}

var rootCmd = &cobra.Command{
	Use:           "cmmgen",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Regenerate the symbol index header and lexer rules of the C-- front end",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(parseLevel(level))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// parseLevel falls back to info for anything logrus doesn't know.
func parseLevel(s string) log.Level {
	l, err := log.ParseLevel(s)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", s)
		return log.InfoLevel
	}

	return l
}

// Execute runs the command line. Generation failures are logged and
// returned, the caller picks the exit status.
func Execute(args []string) error {
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		log.Error(err)
	}

	return err
}
