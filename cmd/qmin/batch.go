package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdbarlow/qmin/internal/qm"
	"github.com/mdbarlow/qmin/internal/qmconfig"
)

func newBatchCmd(log logrus.FieldLogger) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Minimize every table declared in a YAML job file",
		Long: `batch runs the full canonicalize/minimize pipeline over every table
in a job file, printing each table's name and result in turn. A failure on
one table is reported but does not stop the remaining tables from running.

  $ qmin batch --file jobs.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(log, file, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a batch YAML job file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBatch(log logrus.FieldLogger, file string, cmd *cobra.Command) error {
	doc, err := qmconfig.Load(file)
	if err != nil {
		return err
	}

	failures := 0
	for _, spec := range doc.Tables {
		entry := log.WithField("table", spec.Name)

		table, err := spec.ToTable()
		if err != nil {
			entry.WithError(err).Error("batch: could not build table")
			failures++
			continue
		}

		cubes, err := qm.Minimize(table)
		if err != nil {
			entry.WithError(err).Error("batch: minimize failed")
			failures++
			continue
		}

		rendered, err := renderCubes(spec.Vars, table, cubes, spec.FormatOrDefault())
		if err != nil {
			entry.WithError(err).Error("batch: render failed")
			failures++
			continue
		}

		cmd.Println(fmt.Sprintf("%s: %s", spec.Name, rendered))
	}

	if failures > 0 {
		return fmt.Errorf("batch: %d of %d tables failed", failures, len(doc.Tables))
	}
	return nil
}
