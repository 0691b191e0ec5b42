// Package expr parses boolean expressions supplied on the command line
// (e.g. "a & b | !c") into an AST and exposes them as an enum.Predicate,
// so the CLI's enumerate subcommand can drive internal/enum without the
// caller writing Go. The grammar is a small recursive-descent parser over
// identifiers, 0/1 literals, !, &, |, and parentheses, with ! binding
// tighter than &, which binds tighter than |.
package expr
