package logic

import (
	"testing"

	"github.com/onsi/gomega"
)

var propertyNames = []string{"A", "B", "C", "D"}

func TestDeMorganProperty(t *testing.T) {
	g := gomega.NewWithT(t)

	for range 200 {
		a := GenerateSentence(3, propertyNames)
		b := GenerateSentence(3, propertyNames)
		model := GenerateModel(propertyNames)

		left, err := Not(And(a, b)).Evaluate(model)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		right, err := Or(Not(a), Not(b)).Evaluate(model)
		g.Expect(err).NotTo(gomega.HaveOccurred())

		g.Expect(left).To(gomega.Equal(right))
	}
}

func TestImplicationProperty(t *testing.T) {
	g := gomega.NewWithT(t)

	for range 200 {
		a := GenerateSentence(3, propertyNames)
		b := GenerateSentence(3, propertyNames)
		model := GenerateModel(propertyNames)

		implied, err := Implication(a, b).Evaluate(model)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		antecedent, err := a.Evaluate(model)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		consequent, err := b.Evaluate(model)
		g.Expect(err).NotTo(gomega.HaveOccurred())

		g.Expect(implied).To(gomega.Equal(!antecedent || consequent))
	}
}

// A model binding every symbol of a sentence always yields a verdict.
func TestCompleteModelProperty(t *testing.T) {
	g := gomega.NewWithT(t)

	for range 200 {
		sentence := GenerateSentence(5, propertyNames)
		model := GenerateModel(sentence.Symbols())

		_, err := sentence.Evaluate(model)
		g.Expect(err).NotTo(gomega.HaveOccurred())
	}
}
