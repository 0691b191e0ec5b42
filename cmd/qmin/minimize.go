package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdbarlow/qmin/internal/qm"
	"github.com/mdbarlow/qmin/internal/qmconfig"
)

func newMinimizeCmd(log logrus.FieldLogger) *cobra.Command {
	var file, format string

	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Minimize a single truth table from a YAML job file",
		Long: `minimize reads a batch-style YAML job file containing exactly one
table entry and prints it in the requested format: its minimum
sum-of-products form by default, or the DNF/CNF of its canonical table.

  $ qmin minimize --file table.yaml --format minimal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinimize(log, file, format, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a batch-style YAML file with a single table")
	cmd.Flags().StringVar(&format, "format", "", "output format: minimal, dnf or cnf (overrides the file's own format)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runMinimize(log logrus.FieldLogger, file, formatOverride string, cmd *cobra.Command) error {
	doc, err := qmconfig.Load(file)
	if err != nil {
		return err
	}
	if len(doc.Tables) != 1 {
		return errors.Errorf("minimize: %s must declare exactly one table, found %d", file, len(doc.Tables))
	}

	spec := doc.Tables[0]
	format := spec.FormatOrDefault()
	if formatOverride != "" {
		format = formatOverride
	}

	table, err := spec.ToTable()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"table": spec.Name, "rows": len(table)}).Debug("minimize: canonicalizing")

	cubes, err := qm.Minimize(table)
	if err != nil {
		return err
	}

	rendered, err := renderCubes(spec.Vars, table, cubes, format)
	if err != nil {
		return err
	}

	cmd.Println(rendered)
	return nil
}

func renderCubes(vars []string, table qm.Table, cubes []qm.Cube, format string) (string, error) {
	switch strings.ToLower(format) {
	case "minimal", "":
		return qm.MinimalFormula(vars, cubes), nil
	case "dnf":
		canon, err := qm.Canonicalize(table)
		if err != nil {
			return "", err
		}
		return qm.DNF(vars, canon.ToEnumRows(vars)), nil
	case "cnf":
		canon, err := qm.Canonicalize(table)
		if err != nil {
			return "", err
		}
		return qm.CNF(vars, canon.ToEnumRows(vars)), nil
	default:
		return "", errors.Errorf("unknown format %q", format)
	}
}
