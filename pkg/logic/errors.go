package logic

import "fmt"

// InvalidOperandError is the panic value raised by the connective
// constructors when an operand is not a logical sentence.
type InvalidOperandError struct {
	Connective string
}

func (err InvalidOperandError) Error() string {
	return fmt.Sprintf("%v operand must be a logical sentence", err.Connective)
}

// UnboundSymbolError is returned by Evaluate when a symbol occurring in the
// sentence is not bound in the supplied model.
type UnboundSymbolError struct {
	Name string
}

func (err UnboundSymbolError) Error() string {
	return fmt.Sprintf("variable %v not in model", err.Name)
}
