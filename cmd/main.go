package main

import (
	"fmt"
	"log"
	"slices"

	"github.com/Arrey22/Decision-making/pkg/inference"
	"github.com/Arrey22/Decision-making/pkg/logic"
	"github.com/samber/lo"
)

var (
	rain         = logic.Symbol("Rain")
	earlyMeeting = logic.Symbol("EarlyMeeting")
	strike       = logic.Symbol("Strike")
	appointment  = logic.Symbol("Appointment")

	workFromHome    = logic.Symbol("WorkFromHome")
	drive           = logic.Symbol("Drive")
	publicTransport = logic.Symbol("PublicTransport")
)

// Commuting rule base: when to work from home, drive or take public transport.
var rules = logic.And(
	// Rain or an early meeting means working from home
	logic.Implication(logic.Or(rain, earlyMeeting), workFromHome),
	// An appointment without an early meeting means driving
	logic.Implication(logic.And(appointment, logic.Not(earlyMeeting)), drive),
	// No strike and no rain means public transport
	logic.Implication(logic.And(logic.Not(strike), logic.Not(rain)), publicTransport),
)

func main() {
	scenarios := []logic.Model{
		// It is raining
		{"Rain": true, "EarlyMeeting": false, "Strike": false, "Appointment": false},
		// Public transport strike, no rain
		{"Rain": false, "EarlyMeeting": false, "Strike": true, "Appointment": false},
		// Clear day, nothing scheduled
		{"Rain": false, "EarlyMeeting": false, "Strike": false, "Appointment": false},
		// Doctor's appointment on a clear day
		{"Rain": false, "EarlyMeeting": false, "Strike": false, "Appointment": true},
	}

	fmt.Printf("Knowledge base: %v\n\n", rules.Formula())

	for _, scenario := range scenarios {
		fmt.Printf("Model: %v\n", scenario)
		fmt.Printf("Should work from home? %v\n", check(scenario, workFromHome))
		fmt.Printf("Should drive? %v\n", check(scenario, drive))
		fmt.Printf("Should take public transport? %v\n\n", check(scenario, publicTransport))
	}
}

// check conjoins the scenario's facts into the rule base and asks whether the
// combined knowledge entails the action.
func check(scenario logic.Model, action logic.Sentence) bool {
	conjuncts := []logic.Sentence{rules}

	names := lo.Keys(scenario)
	slices.Sort(names)
	for _, name := range names {
		literal := logic.Symbol(name)
		if !scenario[name] {
			literal = logic.Not(literal)
		}
		conjuncts = append(conjuncts, literal)
	}

	entailed, err := inference.ModelCheck(logic.And(conjuncts...), action)
	if err != nil {
		log.Fatalf("cannot model-check the knowledge base: %v", err)
	}
	return entailed
}
