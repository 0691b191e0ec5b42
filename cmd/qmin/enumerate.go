package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdbarlow/qmin/internal/enum"
	"github.com/mdbarlow/qmin/internal/expr"
	"github.com/mdbarlow/qmin/internal/qm"
)

func newEnumerateCmd(log logrus.FieldLogger) *cobra.Command {
	var exprSrc, format string
	var minimize bool

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Discover a boolean expression's variables and truth table",
		Long: `enumerate parses a boolean expression (identifiers, 0/1, !, &, |,
parentheses) and drives it adaptively to discover every variable it reads
and every assignment it branches on, the way a caller with no prior
knowledge of the expression's arity would.

  $ qmin enumerate --expr "a & b | !c" --format dnf
  $ qmin enumerate --expr "a & b | !c" --minimize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerate(log, exprSrc, format, minimize, cmd)
		},
	}

	cmd.Flags().StringVarP(&exprSrc, "expr", "e", "", "boolean expression to enumerate")
	cmd.Flags().StringVar(&format, "format", "dnf", "output format: dnf or cnf")
	cmd.Flags().BoolVar(&minimize, "minimize", false, "run the discovered table through Quine-McCluskey instead of printing the raw DNF/CNF")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func runEnumerate(log logrus.FieldLogger, exprSrc, format string, minimize bool, cmd *cobra.Command) error {
	prog, err := expr.Parse(exprSrc)
	if err != nil {
		return errors.Wrap(err, "enumerate: parse expression")
	}

	rows, names := enum.Enumerate(log, prog.ToPredicate())
	log.WithFields(logrus.Fields{"rows": len(rows), "vars": names}).Debug("enumerate: discovery complete")

	if minimize {
		table := enum.ToTable(rows, names)
		cubes, err := qm.Minimize(table)
		if err != nil {
			return err
		}
		cmd.Println(qm.MinimalFormula(names, cubes))
		return nil
	}

	qmRows := enum.ToQMRows(rows)
	switch strings.ToLower(format) {
	case "dnf", "":
		cmd.Println(qm.DNF(names, qmRows))
	case "cnf":
		cmd.Println(qm.CNF(names, qmRows))
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return nil
}
