package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	qmin "github.com/mdbarlow/qmin"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})

	rootCmd := &cobra.Command{
		Use:   "qmin",
		Short: "qmin minimizes boolean truth tables with Quine-McCluskey",
		Long: `qmin discovers and minimizes boolean functions.

It can minimize an explicit truth table (minimize), discover a function's
variables and rows by probing an expression (enumerate), or run a batch of
tables from a YAML job file (batch).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newMinimizeCmd(log),
		newEnumerateCmd(log),
		newBatchCmd(log),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("qmin failed")
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the qmin version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(qmin.Version())
			return nil
		},
	}
}
