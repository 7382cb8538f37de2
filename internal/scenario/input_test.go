package scenario

import (
	"os"
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Arrey22/Decision-making/pkg/inference"
)

const commuteJson = `{
	"rules": [
		{"when": {"any": [{"symbol": "Rain"}, {"symbol": "EarlyMeeting"}]}, "then": "WorkFromHome"},
		{"when": {"all": [{"symbol": "Appointment"}, {"not": {"symbol": "EarlyMeeting"}}]}, "then": "Drive"},
		{"when": {"all": [{"not": {"symbol": "Strike"}}, {"not": {"symbol": "Rain"}}]}, "then": "PublicTransport"}
	],
	"facts": {"Rain": true, "EarlyMeeting": false, "Strike": false, "Appointment": false},
	"queries": ["WorkFromHome", "Drive", "PublicTransport"]
}`

const commuteYaml = `rules:
  - when:
      any:
        - symbol: Rain
        - symbol: EarlyMeeting
    then: WorkFromHome
  - when:
      all:
        - symbol: Appointment
        - not:
            symbol: EarlyMeeting
    then: Drive
  - when:
      all:
        - not:
            symbol: Strike
        - not:
            symbol: Rain
    then: PublicTransport
facts:
  Rain: true
  EarlyMeeting: false
  Strike: false
  Appointment: false
queries:
  - WorkFromHome
  - Drive
  - PublicTransport
`

var commuteInput = Input{
	Rules: []Rule{
		{
			When: Condition{Any: []Condition{{Symbol: "Rain"}, {Symbol: "EarlyMeeting"}}},
			Then: "WorkFromHome",
		},
		{
			When: Condition{All: []Condition{{Symbol: "Appointment"}, {Not: &Condition{Symbol: "EarlyMeeting"}}}},
			Then: "Drive",
		},
		{
			When: Condition{All: []Condition{{Not: &Condition{Symbol: "Strike"}}, {Not: &Condition{Symbol: "Rain"}}}},
			Then: "PublicTransport",
		},
	},
	Facts:   map[string]bool{"Rain": true, "EarlyMeeting": false, "Strike": false, "Appointment": false},
	Queries: []string{"WorkFromHome", "Drive", "PublicTransport"},
}

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	file := path.Join(t.TempDir(), name)
	assert.Nil(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestInputFromJson(t *testing.T) {
	// Arrange
	file := writeScenario(t, "commute.json", commuteJson)

	// Act
	input, err := InputFromJson(file)

	// Assert
	assert.Nil(t, err)
	assert.Empty(t, cmp.Diff(commuteInput, input))
}

func TestInputFromYaml(t *testing.T) {
	// Arrange
	file := writeScenario(t, "commute.yaml", commuteYaml)

	// Act
	input, err := InputFromYaml(file)

	// Assert
	assert.Nil(t, err)
	assert.Empty(t, cmp.Diff(commuteInput, input))
}

func TestKnowledge(t *testing.T) {
	t.Run("Rules and facts conjoin deterministically", func(t *testing.T) {
		knowledge, err := commuteInput.Knowledge()

		assert.Nil(t, err)
		assert.Equal(t,
			"((Rain ∨ EarlyMeeting) => WorkFromHome)"+
				" ∧ ((Appointment ∧ (¬EarlyMeeting)) => Drive)"+
				" ∧ (((¬Strike) ∧ (¬Rain)) => PublicTransport)"+
				" ∧ (¬Appointment) ∧ (¬EarlyMeeting) ∧ Rain ∧ (¬Strike)",
			knowledge.Formula())
	})

	t.Run("A rule without a then symbol is rejected", func(t *testing.T) {
		input := Input{Rules: []Rule{{When: Condition{Symbol: "Rain"}}}}

		_, err := input.Knowledge()

		assert.ErrorContains(t, err, "missing \"then\" symbol")
	})

	t.Run("A condition must set exactly one field", func(t *testing.T) {
		overlapping := Input{Rules: []Rule{{
			When: Condition{Symbol: "Rain", Not: &Condition{Symbol: "Strike"}},
			Then: "WorkFromHome",
		}}}
		empty := Input{Rules: []Rule{{When: Condition{}, Then: "WorkFromHome"}}}

		_, err := overlapping.Knowledge()
		assert.ErrorContains(t, err, "exactly one")

		_, err = empty.Knowledge()
		assert.ErrorContains(t, err, "exactly one")
	})
}

func TestVerdicts(t *testing.T) {
	checker := inference.NewEnumerationChecker()

	t.Run("Raining without an early meeting", func(t *testing.T) {
		verdicts, err := commuteInput.Verdicts(checker)

		assert.Nil(t, err)
		assert.Equal(t, map[string]bool{
			"WorkFromHome":    true,
			"Drive":           false,
			"PublicTransport": false,
		}, verdicts)
	})

	t.Run("Appointment on a clear day", func(t *testing.T) {
		input := commuteInput
		input.Facts = map[string]bool{"Rain": false, "EarlyMeeting": false, "Strike": false, "Appointment": true}

		verdicts, err := input.Verdicts(checker)

		assert.Nil(t, err)
		assert.Equal(t, map[string]bool{
			"WorkFromHome":    false,
			"Drive":           true,
			"PublicTransport": true,
		}, verdicts)
	})
}
