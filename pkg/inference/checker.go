package inference

import (
	"slices"

	"github.com/Arrey22/Decision-making/pkg/logic"
	"github.com/samber/lo"
)

// Checker decides whether a knowledge base entails a query.
type Checker interface {
	// Entails reports whether every truth assignment over the combined symbols
	// of knowledge and query that satisfies knowledge also satisfies query.
	Entails(knowledge, query logic.Sentence) (bool, error)
}

// NewEnumerationChecker returns a Checker that enumerates all 2^n complete
// truth assignments over the n symbols of knowledge and query. Exponential,
// intended for small symbol counts.
func NewEnumerationChecker() Checker {
	return &enumerationChecker{}
}

// ModelCheck reports whether knowledge entails query by exhaustive
// enumeration.
func ModelCheck(knowledge, query logic.Sentence) (bool, error) {
	return NewEnumerationChecker().Entails(knowledge, query)
}

type enumerationChecker struct{}

func (checker *enumerationChecker) Entails(knowledge, query logic.Sentence) (bool, error) {
	symbols := lo.Uniq(slices.Concat(knowledge.Symbols(), query.Symbols()))
	slices.Sort(symbols) // Deterministic branching order across runs
	return checker.checkAll(knowledge, query, symbols, logic.Model{})
}

// checkAll branches on the first unassigned symbol and requires entailment to
// hold on both extensions. Once every symbol is assigned, an assignment that
// falsifies knowledge constrains nothing and holds vacuously.
func (checker *enumerationChecker) checkAll(knowledge, query logic.Sentence, symbols []string, model logic.Model) (bool, error) {
	if len(symbols) == 0 {
		satisfied, err := knowledge.Evaluate(model)
		if err != nil {
			return false, err
		}
		if !satisfied {
			return true, nil
		}
		return query.Evaluate(model)
	}

	name, remaining := symbols[0], symbols[1:]
	for _, value := range []bool{true, false} {
		holds, err := checker.checkAll(knowledge, query, remaining, model.Extend(name, value))
		if err != nil {
			return false, err
		}
		if !holds { // The first counterexample already refutes entailment
			return false, nil
		}
	}
	return true, nil
}
