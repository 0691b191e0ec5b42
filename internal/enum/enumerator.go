package enum

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Row is one predicate invocation's outcome: the assignment that was
// actually bound when the predicate returned, the output it produced,
// and the order this invocation's own new variables were first read.
type Row struct {
	Observed map[string]bool
	Output   bool
	Order    []string
}

// Enumerator owns the registry, plan, worklist and seen-fingerprint
// state for one run of Enumerate. It is not safe for concurrent use and
// is not meant to be reused across calls.
type Enumerator struct {
	log *logrus.Entry

	registryOrder []string
	registryIndex map[string]int

	plan     map[string]bool
	worklist []map[string]bool
	seen     map[string]bool
}

// New builds an Enumerator that logs variable discovery and worklist
// scheduling at Debug/Trace level. log may be nil, in which case a
// discarding logger is used.
func New(log logrus.FieldLogger) *Enumerator {
	var entry *logrus.Entry
	switch l := log.(type) {
	case *logrus.Entry:
		entry = l
	case *logrus.Logger:
		entry = l.WithField("component", "enum")
	default:
		discard := logrus.New()
		discard.SetOutput(nopWriter{})
		entry = discard.WithField("component", "enum")
	}

	return &Enumerator{
		log:           entry,
		registryIndex: make(map[string]int),
		plan:          make(map[string]bool),
		seen:          make(map[string]bool),
	}
}

// Enumerate drives predicate to exhaustion: the first invocation starts
// from an empty plan; each read of a previously unbound variable fixes
// it to false on the current path and, unless already scheduled, pushes
// the true-extended plan to the front of the worklist. The loop ends
// when the worklist is empty. Returns the rows recorded across every
// invocation, in invocation order, and the variable names in
// first-global-discovery order.
func Enumerate(log logrus.FieldLogger, predicate Predicate) ([]Row, []string) {
	e := New(log)
	return e.Run(predicate)
}

// Run is the instance form of Enumerate, for callers that want direct
// access to the Enumerator (e.g. to call AllNames before consuming the
// returned rows).
func (e *Enumerator) Run(predicate Predicate) ([]Row, []string) {
	var rows []Row

	for {
		order := []string{}
		reader := &boundReader{e: e, order: &order}

		output := predicate(reader)

		row := Row{
			Observed: clonePlan(e.plan),
			Output:   output,
			Order:    append([]string{}, order...),
		}
		rows = append(rows, row)
		e.log.WithFields(logrus.Fields{
			"observed": row.Observed,
			"output":   row.Output,
		}).Trace("enum: recorded row")

		if len(e.worklist) == 0 {
			break
		}

		e.plan = e.worklist[0]
		e.worklist = e.worklist[1:]
		e.log.WithField("plan", e.plan).Debug("enum: resuming from worklist")
	}

	return rows, e.AllNames()
}

// AllNames returns the variable names in the order they were first
// observed anywhere during the run, the order formula printers use for
// literal placement.
func (e *Enumerator) AllNames() []string {
	return append([]string{}, e.registryOrder...)
}

func (e *Enumerator) register(name string) {
	if _, ok := e.registryIndex[name]; ok {
		return
	}
	e.registryIndex[name] = len(e.registryOrder)
	e.registryOrder = append(e.registryOrder, name)
	e.log.WithFields(logrus.Fields{"name": name, "index": e.registryIndex[name]}).Debug("enum: registered variable")
}

func clonePlan(plan map[string]bool) map[string]bool {
	out := make(map[string]bool, len(plan))
	for k, v := range plan {
		out[k] = v
	}
	return out
}

// fingerprint canonicalizes a plan into a comparable string: sorted
// name=value pairs joined by commas, so two plans with identical
// bindings (regardless of build order) fingerprint identically.
func fingerprint(plan map[string]bool) string {
	names := make([]string, 0, len(plan))
	for name := range plan {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		if plan[name] {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	return sb.String()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
