package codegen

// Bound names a constraint target and the types it must satisfy, used for
// where clauses and associated-type constraints.
type Bound struct {
	Name  string
	Types []Type
}
