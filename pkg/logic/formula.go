package logic

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

func (s symbol) Formula() string {
	return s.name
}

func (s not) Formula() string {
	return "¬" + parenthesize(s.operand.Formula())
}

func (s and) Formula() string {
	if len(s.conjuncts) == 1 {
		return s.conjuncts[0].Formula()
	}
	return joinFormulas(s.conjuncts, " ∧ ")
}

func (s or) Formula() string {
	if len(s.disjuncts) == 1 {
		return s.disjuncts[0].Formula()
	}
	return joinFormulas(s.disjuncts, " ∨ ")
}

func (s implication) Formula() string {
	return parenthesize(s.antecedent.Formula()) + " => " + parenthesize(s.consequent.Formula())
}

func joinFormulas(operands []Sentence, connective string) string {
	formulas := lo.Map(operands, func(operand Sentence, _ int) string {
		return parenthesize(operand.Formula())
	})
	return strings.Join(formulas, connective)
}

// parenthesize wraps formula in parentheses unless it needs none: the empty
// string, a bare symbol name and a formula already enclosed in a balanced
// pair of outer parentheses stay as they are.
func parenthesize(formula string) string {
	if formula == "" || alphabetic(formula) {
		return formula
	}
	if formula[0] == '(' && formula[len(formula)-1] == ')' && balanced(formula[1:len(formula)-1]) {
		return formula
	}
	return "(" + formula + ")"
}

func alphabetic(formula string) bool {
	for _, r := range formula {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// balanced reports whether every parenthesis in formula closes one opened
// within formula itself.
func balanced(formula string) bool {
	depth := 0
	for _, r := range formula {
		switch r {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}
