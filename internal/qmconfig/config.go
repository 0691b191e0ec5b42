// Package qmconfig loads the batch job file the "qmin batch" subcommand
// consumes: a YAML document describing one or more truth tables to
// minimize in a single run, patterned on the config-file loader in
// operator-framework's ALM operator (gopkg.in/yaml.v2's config.LoadConfig)
// but using yaml.v3, the version the rest of the retrieval pack settled
// on for new code.
package qmconfig

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the top-level batch document.
//
//	tables:
//	  - name: majority3
//	    vars: [a, b, c]
//	    format: dnf
//	    rows:
//	      - in: [0, 0, 0]
//	        out: 0
//	      - in: [1, 1, "-"]
//	        out: 1
type File struct {
	Tables []TableSpec `yaml:"tables"`
}

// TableSpec is one table's job description.
type TableSpec struct {
	Name   string    `yaml:"name"`
	Vars   []string  `yaml:"vars"`
	Format string    `yaml:"format"`
	Rows   []RowSpec `yaml:"rows"`
}

// RowSpec is one row of a table as it appears in YAML: In accepts the
// tri-value synonyms qm.ParseTri understands (0, 1, "-", true, false,
// "x", ...), Out likewise.
type RowSpec struct {
	In  []any `yaml:"in"`
	Out any   `yaml:"out"`
}

// Load reads and parses the batch file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "qmconfig: read %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "qmconfig: parse %s", path)
	}

	if len(f.Tables) == 0 {
		return nil, errors.Errorf("qmconfig: %s declares no tables", path)
	}
	for i, tbl := range f.Tables {
		if tbl.Name == "" {
			return nil, errors.Errorf("qmconfig: table %d has no name", i)
		}
		if len(tbl.Vars) == 0 {
			return nil, errors.Errorf("qmconfig: table %q declares no vars", tbl.Name)
		}
		switch tbl.Format {
		case "", "dnf", "cnf", "minimal":
		default:
			return nil, errors.Errorf("qmconfig: table %q has unknown format %q", tbl.Name, tbl.Format)
		}
	}

	return &f, nil
}

// FormatOrDefault returns the table's requested output format, defaulting to
// "minimal" when the batch document leaves it blank.
func (t TableSpec) FormatOrDefault() string {
	if t.Format == "" {
		return "minimal"
	}
	return t.Format
}
