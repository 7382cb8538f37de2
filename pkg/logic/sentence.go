package logic

import (
	"hash"
	"slices"

	"github.com/samber/lo"
)

// Sentence is a propositional-logic sentence: an immutable expression tree
// built from atomic symbols and the Not, And, Or and Implication connectives.
// The variant set is closed, so every operation on sentences is an exhaustive
// case analysis over the five of them.
type Sentence interface {
	// Evaluate computes the truth value of the sentence under the given model.
	// Every symbol occurring in the sentence must be bound in the model,
	// otherwise an UnboundSymbolError is returned.
	Evaluate(model Model) (bool, error)

	// Symbols returns the distinct symbol names occurring anywhere in the
	// sentence, sorted to give callers a deterministic iteration order.
	Symbols() []string

	// Formula renders the sentence as a human-readable propositional formula.
	Formula() string

	fingerprint(hasher hash.Hash64)
}

type symbol struct {
	name string
}

// Symbol constructs an atomic proposition with the given name.
func Symbol(name string) Sentence {
	return symbol{name: name}
}

func (s symbol) Evaluate(model Model) (bool, error) {
	value, ok := model[s.name]
	if !ok {
		return false, UnboundSymbolError{Name: s.name}
	}
	return value, nil
}

func (s symbol) Symbols() []string {
	return []string{s.name}
}

type not struct {
	operand Sentence
}

// Not constructs the negation of operand.
func Not(operand Sentence) Sentence {
	validate("negation", operand)
	return not{operand: operand}
}

func (s not) Evaluate(model Model) (bool, error) {
	value, err := s.operand.Evaluate(model)
	if err != nil {
		return false, err
	}
	return !value, nil
}

func (s not) Symbols() []string {
	return s.operand.Symbols()
}

type and struct {
	conjuncts []Sentence
}

// And constructs the conjunction of conjuncts. A conjunction with no
// conjuncts is vacuously true.
func And(conjuncts ...Sentence) Sentence {
	for _, conjunct := range conjuncts {
		validate("conjunction", conjunct)
	}
	return and{conjuncts: slices.Clone(conjuncts)}
}

func (s and) Evaluate(model Model) (bool, error) {
	for _, conjunct := range s.conjuncts {
		value, err := conjunct.Evaluate(model)
		if err != nil {
			return false, err
		}
		if !value {
			return false, nil
		}
	}
	return true, nil
}

func (s and) Symbols() []string {
	return operandSymbols(s.conjuncts)
}

type or struct {
	disjuncts []Sentence
}

// Or constructs the disjunction of disjuncts. A disjunction with no disjuncts
// is vacuously false.
func Or(disjuncts ...Sentence) Sentence {
	for _, disjunct := range disjuncts {
		validate("disjunction", disjunct)
	}
	return or{disjuncts: slices.Clone(disjuncts)}
}

func (s or) Evaluate(model Model) (bool, error) {
	for _, disjunct := range s.disjuncts {
		value, err := disjunct.Evaluate(model)
		if err != nil {
			return false, err
		}
		if value {
			return true, nil
		}
	}
	return false, nil
}

func (s or) Symbols() []string {
	return operandSymbols(s.disjuncts)
}

type implication struct {
	antecedent Sentence
	consequent Sentence
}

// Implication constructs the material implication antecedent => consequent.
func Implication(antecedent, consequent Sentence) Sentence {
	validate("implication", antecedent)
	validate("implication", consequent)
	return implication{antecedent: antecedent, consequent: consequent}
}

func (s implication) Evaluate(model Model) (bool, error) {
	value, err := s.antecedent.Evaluate(model)
	if err != nil {
		return false, err
	}
	if !value { // A false antecedent satisfies the implication vacuously
		return true, nil
	}
	return s.consequent.Evaluate(model)
}

func (s implication) Symbols() []string {
	return operandSymbols([]Sentence{s.antecedent, s.consequent})
}

// validate panics when operand is not a usable sentence. A nil operand is a
// defect in the calling code, not a recoverable condition.
func validate(connective string, operand Sentence) {
	if operand == nil {
		panic(InvalidOperandError{Connective: connective})
	}
}

// operandSymbols unions the symbol sets of operands. An empty operand list
// yields an empty set.
func operandSymbols(operands []Sentence) []string {
	symbols := lo.FlatMap(operands, func(operand Sentence, _ int) []string {
		return operand.Symbols()
	})
	symbols = lo.Uniq(symbols)
	slices.Sort(symbols)
	return symbols
}
