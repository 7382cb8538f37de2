package logic

import "github.com/samber/lo"

// Model maps symbol names to truth values, representing one complete or
// partial truth assignment. Absence of a name is not falsehood: evaluating a
// symbol missing from the model fails with an UnboundSymbolError.
type Model map[string]bool

// Extend returns a copy of the model with name bound to value. The receiver
// is never modified, so sibling branches of an enumeration can extend the
// same model independently.
func (model Model) Extend(name string, value bool) Model {
	return lo.Assign(model, Model{name: value})
}
