package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	"github.com/Arrey22/Decision-making/pkg/inference"
	"github.com/Arrey22/Decision-making/pkg/logic"
)

// Condition is one node of a rule condition. Exactly one field must be set.
type Condition struct {
	Symbol string      `mapstructure:"symbol" yaml:"symbol,omitempty"`
	Not    *Condition  `mapstructure:"not" yaml:"not,omitempty"`
	All    []Condition `mapstructure:"all" yaml:"all,omitempty"`
	Any    []Condition `mapstructure:"any" yaml:"any,omitempty"`
}

// Rule states that whenever its condition holds, the Then symbol holds.
type Rule struct {
	When Condition `mapstructure:"when" yaml:"when"`
	Then string    `mapstructure:"then" yaml:"then"`
}

// Input is a decoded scenario file: the rule base, the facts observed in the
// scenario and the action symbols to query.
type Input struct {
	Rules   []Rule          `mapstructure:"rules" yaml:"rules"`
	Facts   map[string]bool `mapstructure:"facts" yaml:"facts"`
	Queries []string        `mapstructure:"queries" yaml:"queries"`
}

func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Input{}, err
	}

	return input, nil
}

// InputFromYaml decodes a YAML scenario. yaml.v2 unmarshals into the tagged
// structs directly: its generic maps are map[any]any, which mapstructure does
// not accept.
func InputFromYaml(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}

	var input Input
	if err := yaml.Unmarshal(bytes, &input); err != nil {
		return Input{}, err
	}

	return input, nil
}

// Knowledge conjoins every rule implication with one literal per fact. Facts
// are added in sorted-name order so the rendered formula is stable.
func (input Input) Knowledge() (logic.Sentence, error) {
	conjuncts := make([]logic.Sentence, 0, len(input.Rules)+len(input.Facts))

	for i, rule := range input.Rules {
		if rule.Then == "" {
			return nil, fmt.Errorf("rule %v: missing \"then\" symbol", i)
		}
		condition, err := rule.When.sentence()
		if err != nil {
			return nil, fmt.Errorf("rule %v: %w", i, err)
		}
		conjuncts = append(conjuncts, logic.Implication(condition, logic.Symbol(rule.Then)))
	}

	names := lo.Keys(input.Facts)
	slices.Sort(names)
	for _, name := range names {
		literal := logic.Symbol(name)
		if !input.Facts[name] {
			literal = logic.Not(literal)
		}
		conjuncts = append(conjuncts, literal)
	}

	return logic.And(conjuncts...), nil
}

// Verdicts model-checks every queried action symbol against the scenario's
// knowledge base.
func (input Input) Verdicts(checker inference.Checker) (map[string]bool, error) {
	knowledge, err := input.Knowledge()
	if err != nil {
		return nil, err
	}

	verdicts := make(map[string]bool, len(input.Queries))
	for _, query := range input.Queries {
		entailed, err := checker.Entails(knowledge, logic.Symbol(query))
		if err != nil {
			return nil, err
		}
		verdicts[query] = entailed
	}

	return verdicts, nil
}

func (condition Condition) sentence() (logic.Sentence, error) {
	set := 0
	if condition.Symbol != "" {
		set++
	}
	if condition.Not != nil {
		set++
	}
	if condition.All != nil {
		set++
	}
	if condition.Any != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("condition must set exactly one of \"symbol\", \"not\", \"all\" or \"any\": %+v", condition)
	}

	switch {
	case condition.Symbol != "":
		return logic.Symbol(condition.Symbol), nil
	case condition.Not != nil:
		operand, err := condition.Not.sentence()
		if err != nil {
			return nil, err
		}
		return logic.Not(operand), nil
	case condition.All != nil:
		operands, err := sentences(condition.All)
		if err != nil {
			return nil, err
		}
		return logic.And(operands...), nil
	default:
		operands, err := sentences(condition.Any)
		if err != nil {
			return nil, err
		}
		return logic.Or(operands...), nil
	}
}

func sentences(conditions []Condition) ([]logic.Sentence, error) {
	operands := make([]logic.Sentence, len(conditions))
	for i, condition := range conditions {
		operand, err := condition.sentence()
		if err != nil {
			return nil, err
		}
		operands[i] = operand
	}
	return operands, nil
}
