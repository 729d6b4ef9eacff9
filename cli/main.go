package cli

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
)

var (
	BuildDate          string
	ApplicationVersion string
)

const (
	AppName = "gofluxx"

	VerbosityFlag = "verbosity"
	ConfigFlag    = "config"
	OutputFlag    = "output"
	CutLinesFlag  = "cut-lines"
)

var (
	verbosity string

	rootCmd = &cobra.Command{
		Use:   AppName,
		Short: "Printable Fluxx cards generator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger()
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&verbosity, VerbosityFlag, "v", "info", "Set log verbosity")
}

func initLogger() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level, err := zerolog.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
