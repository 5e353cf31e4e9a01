package catalog

import "fmt"

// GuardianStar is one of the ten star modifiers a card fights under.
// The stars form two dominance cycles; fighting under a star that beats
// the opponent's grants a flat battle bonus.
type GuardianStar int

const (
	StarSol GuardianStar = iota
	StarLuna
	StarVenus
	StarMercury
	StarMars
	StarJupiter
	StarSaturn
	StarUranus
	StarPluto
	StarNeptune
)

func (s GuardianStar) String() string {
	switch s {
	case StarSol:
		return "Sol"
	case StarLuna:
		return "Luna"
	case StarVenus:
		return "Venus"
	case StarMercury:
		return "Mercury"
	case StarMars:
		return "Mars"
	case StarJupiter:
		return "Jupiter"
	case StarSaturn:
		return "Saturn"
	case StarUranus:
		return "Uranus"
	case StarPluto:
		return "Pluto"
	case StarNeptune:
		return "Neptune"
	default:
		return "Unknown"
	}
}

// StarBonusValue is the flat swing applied when one star beats the other.
const StarBonusValue = 500

// starBeats maps each star to the star it dominates. Two cycles:
// Sol > Luna > Venus > Mercury > Sol, and
// Mars > Jupiter > Saturn > Uranus > Pluto > Neptune > Mars.
var starBeats = map[GuardianStar]GuardianStar{
	StarSol:     StarLuna,
	StarLuna:    StarVenus,
	StarVenus:   StarMercury,
	StarMercury: StarSol,
	StarMars:    StarJupiter,
	StarJupiter: StarSaturn,
	StarSaturn:  StarUranus,
	StarUranus:  StarPluto,
	StarPluto:   StarNeptune,
	StarNeptune: StarMars,
}

// Beats reports whether s dominates other.
func (s GuardianStar) Beats(other GuardianStar) bool {
	return starBeats[s] == other
}

// StarBonus returns the battle modifier for a card fighting under star a
// against an opponent under star b: +500 if a beats b, -500 if b beats a,
// 0 for unrelated stars.
func StarBonus(a, b GuardianStar) int {
	if a.Beats(b) {
		return StarBonusValue
	}
	if b.Beats(a) {
		return -StarBonusValue
	}
	return 0
}

// Attribute is a monster card's elemental attribute.
type Attribute int

const (
	AttrLight Attribute = iota
	AttrDark
	AttrEarth
	AttrWater
	AttrFire
	AttrWind
)

func (a Attribute) String() string {
	switch a {
	case AttrLight:
		return "Light"
	case AttrDark:
		return "Dark"
	case AttrEarth:
		return "Earth"
	case AttrWater:
		return "Water"
	case AttrFire:
		return "Fire"
	case AttrWind:
		return "Wind"
	default:
		return "Unknown"
	}
}

// ParseAttribute converts a record field into an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	switch s {
	case "Light":
		return AttrLight, nil
	case "Dark":
		return AttrDark, nil
	case "Earth":
		return AttrEarth, nil
	case "Water":
		return AttrWater, nil
	case "Fire":
		return AttrFire, nil
	case "Wind":
		return AttrWind, nil
	default:
		return 0, fmt.Errorf("unknown attribute %q", s)
	}
}

// attributeStars gives the star pair associated with each attribute.
var attributeStars = map[Attribute][2]GuardianStar{
	AttrLight: {StarSol, StarMercury},
	AttrDark:  {StarLuna, StarVenus},
	AttrFire:  {StarMars, StarSol},
	AttrWater: {StarNeptune, StarLuna},
	AttrEarth: {StarUranus, StarJupiter},
	AttrWind:  {StarSaturn, StarJupiter},
}

// typeStars gives the star pair associated with each monster type.
var typeStars = map[string][2]GuardianStar{
	"Dragon":        {StarMars, StarLuna},
	"Spellcaster":   {StarMercury, StarVenus},
	"Warrior":       {StarUranus, StarSol},
	"Beast":         {StarJupiter, StarSaturn},
	"Beast-Warrior": {StarJupiter, StarUranus},
	"Winged-Beast":  {StarSaturn, StarJupiter},
	"Fiend":         {StarLuna, StarVenus},
	"Zombie":        {StarLuna, StarPluto},
	"Machine":       {StarPluto, StarUranus},
	"Aqua":          {StarNeptune, StarLuna},
	"Fish":          {StarNeptune, StarSaturn},
	"Sea-Serpent":   {StarNeptune, StarMars},
	"Reptile":       {StarUranus, StarNeptune},
	"Pyro":          {StarMars, StarSol},
	"Thunder":       {StarPluto, StarSaturn},
	"Rock":          {StarUranus, StarMars},
	"Plant":         {StarJupiter, StarSol},
	"Insect":        {StarJupiter, StarLuna},
	"Fairy":         {StarSol, StarVenus},
	"Dinosaur":      {StarUranus, StarMars},
}

// assignStars derives a card's printed star pair from its attribute and
// type: the primary star follows the attribute, the secondary follows the
// type. Equal stars fall back to the attribute's secondary so a card never
// prints the same star twice unless the tables force it.
func assignStars(attr Attribute, cardType string) (GuardianStar, GuardianStar) {
	star1 := attributeStars[attr][0]

	star2 := StarJupiter
	if pair, ok := typeStars[cardType]; ok {
		star2 = pair[1]
	}

	if star1 == star2 {
		star2 = attributeStars[attr][1]
	}
	return star1, star2
}
