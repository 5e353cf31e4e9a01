package ai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Search depth tiers. Depth is in plies, so a full exchange of turns
// costs several plies.
const (
	DepthEasy   = 2
	DepthNormal = 4
	DepthHard   = 6
	DepthExpert = 8
)

// WinScore is the saturating value returned for terminal states: a
// guaranteed win always outranks any heuristic score.
const WinScore = 100000

// Config is an immutable evaluation and search profile. Multiple
// difficulty profiles can coexist; the evaluator and searcher only ever
// read from it.
type Config struct {
	Depth int `yaml:"depth"`

	// Evaluation weights, one per signal.
	LifeWeight         float64 `yaml:"life_weight"`          // life-point differential
	FieldControlWeight float64 `yaml:"field_control_weight"` // sole field occupancy
	BattleEdgeWeight   float64 `yaml:"battle_edge_weight"`   // both fields occupied
	BattleEdgeBonus    float64 `yaml:"battle_edge_bonus"`    // flat bonus when the loser sits in ATK
	HandPowerWeight    float64 `yaml:"hand_power_weight"`    // summed hand stats
	BestCardWeight     float64 `yaml:"best_card_weight"`     // strongest hand card
	HandCountWeight    float64 `yaml:"hand_count_weight"`    // per card in hand
	DeckCountWeight    float64 `yaml:"deck_count_weight"`    // per card in deck
	FusionWeight       float64 `yaml:"fusion_weight"`        // fusible pair potential
	LookaheadWeight    float64 `yaml:"lookahead_weight"`     // upcoming deck cards
	LookaheadCards     int     `yaml:"lookahead_cards"`      // how many upcoming cards to score
	LowLifeThreshold   int     `yaml:"low_life_threshold"`   // LP under which the penalty kicks in
	LowLifeWeight      float64 `yaml:"low_life_weight"`
}

// DefaultConfig returns the normal-difficulty profile.
func DefaultConfig() Config {
	return Config{
		Depth:              DepthNormal,
		LifeWeight:         1.5,
		FieldControlWeight: 0.3,
		BattleEdgeWeight:   0.5,
		BattleEdgeBonus:    200,
		HandPowerWeight:    0.1,
		BestCardWeight:     0.15,
		HandCountWeight:    75,
		DeckCountWeight:    25,
		FusionWeight:       150,
		LookaheadWeight:    0.05,
		LookaheadCards:     1,
		LowLifeThreshold:   2000,
		LowLifeWeight:      0.5,
	}
}

// UnmarshalYAML fills unset fields from the defaults, so profile files
// only need to spell out what they change.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type raw Config
	r := raw(DefaultConfig())
	if err := value.Decode(&r); err != nil {
		return err
	}
	*c = Config(r)
	return nil
}

type profilesFile struct {
	Profiles map[string]Config `yaml:"profiles"`
}

// LoadProfiles reads named difficulty profiles from a YAML file. Each
// profile starts from DefaultConfig and overrides the listed fields.
func LoadProfiles(path string) (map[string]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf profilesFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse profiles YAML: %w", err)
	}
	if len(pf.Profiles) == 0 {
		return nil, fmt.Errorf("profiles file %s defines no profiles", path)
	}
	return pf.Profiles, nil
}
