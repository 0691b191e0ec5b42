package expr

// Expr is a node of a parsed boolean expression.
type Expr interface{ isExpr() }

// Ident references a named input variable.
type Ident struct{ Name string }

func (Ident) isExpr() {}

// Not is logical negation.
type Not struct{ X Expr }

func (Not) isExpr() {}

// And is logical conjunction, left-associative.
type And struct{ A, B Expr }

func (And) isExpr() {}

// Or is logical disjunction, left-associative, binding looser than And.
type Or struct{ A, B Expr }

func (Or) isExpr() {}

// Const is a literal 0 or 1.
type Const struct{ Value bool }

func (Const) isExpr() {}
