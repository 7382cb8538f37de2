package logic

import "math/rand/v2"

// GenerateSentence builds a random sentence of at most the given depth over
// the given symbol names.
func GenerateSentence(depth uint64, names []string) Sentence {
	if depth == 0 || rand.Float32() < 0.2 {
		return Symbol(names[rand.IntN(len(names))])
	}

	switch rand.IntN(4) {
	case 0:
		return Not(GenerateSentence(depth-1, names))
	case 1:
		return And(generateOperands(depth-1, names)...)
	case 2:
		return Or(generateOperands(depth-1, names)...)
	default:
		return Implication(GenerateSentence(depth-1, names), GenerateSentence(depth-1, names))
	}
}

// GenerateModel binds every name to a coin flip.
func GenerateModel(names []string) Model {
	model := Model{}
	for _, name := range names {
		model[name] = rand.Float32() < 0.5
	}
	return model
}

func generateOperands(depth uint64, names []string) []Sentence {
	operands := make([]Sentence, rand.IntN(3)+1)
	for i := range operands {
		operands[i] = GenerateSentence(depth, names)
	}
	return operands
}
