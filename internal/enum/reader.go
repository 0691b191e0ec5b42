package enum

import "fmt"

// Reader is the only interface a predicate sees. index identifies a
// boolean input; the enumerator assigns it a name and schedules the
// alternative it didn't return this call for a later invocation.
type Reader interface {
	Read(index int) bool
}

// Predicate is the opaque function under enumeration. It must be a pure
// function of the values its Reader returns: calling it with the same
// sequence of bound reads must always produce the same output.
type Predicate func(Reader) bool

func varName(index int) string {
	return fmt.Sprintf("v[%d]", index)
}

// boundReader is the Reader handed to a single predicate invocation. It
// is backed by the enumerator's live plan and registry, and records the
// order in which this invocation's own newly-bound variables appear.
type boundReader struct {
	e     *Enumerator
	order *[]string
}

func (r *boundReader) Read(index int) bool {
	name := varName(index)
	r.e.register(name)

	if val, ok := r.e.plan[name]; ok {
		return val
	}

	r.e.plan[name] = false
	*r.order = append(*r.order, name)

	truePlan := clonePlan(r.e.plan)
	truePlan[name] = true

	trueFP := fingerprint(truePlan)
	if !r.e.seen[trueFP] {
		falseFP := fingerprint(r.e.plan)
		r.e.seen[trueFP] = true
		r.e.seen[falseFP] = true
		r.e.worklist = append([]map[string]bool{truePlan}, r.e.worklist...)
		r.e.log.WithField("plan", truePlan).Debug("enum: scheduled frontier")
	}

	return false
}
