// Package enum drives an opaque boolean predicate to discover its
// variable set and build a complete row set covering every assignment
// frontier the predicate actually branches on. The predicate is called
// through a Reader so the enumerator never inspects predicate structure,
// only its observed reads.
package enum
