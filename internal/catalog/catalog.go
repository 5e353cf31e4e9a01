package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// fusionIDBase offsets the synthetic IDs given to fusion result cards
	// so they never collide with monster record IDs.
	fusionIDBase = 9000

	// FusionResultLevel is the level assigned to every fusion result.
	FusionResultLevel = 7

	// MinDeckSize and MaxDeckSize bound the per-player deck size.
	MinDeckSize = 10
	MaxDeckSize = 40
)

// MonsterRecord is one already-parsed monster row handed to Load.
type MonsterRecord struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	ATK       int    `yaml:"atk"`
	DEF       int    `yaml:"def"`
	Attribute string `yaml:"attribute"`
	Level     int    `yaml:"level"`
}

// FusionRecord is one already-parsed fusion row handed to Load.
type FusionRecord struct {
	Material1       string `yaml:"material1"`
	Material2       string `yaml:"material2"`
	Result          string `yaml:"result"`
	ResultATK       int    `yaml:"result_atk"`
	ResultDEF       int    `yaml:"result_def"`
	ResultAttribute string `yaml:"result_attribute"`
	ResultType      string `yaml:"result_type"`
}

// Card is an immutable catalog entry. In-game cards reference a Card and
// carry their own transient position and chosen star.
type Card struct {
	ID        int
	Name      string
	Type      string
	ATK       int
	DEF       int
	Attribute Attribute
	Level     int
	Star1     GuardianStar
	Star2     GuardianStar
}

func (c *Card) String() string {
	return fmt.Sprintf("%s (ATK %d/DEF %d) [%s/%s]", c.Name, c.ATK, c.DEF, c.Star1, c.Star2)
}

// Fusion is an immutable recipe: an unordered material pair and its
// precomputed result card.
type Fusion struct {
	Material1 string
	Material2 string
	Result    *Card
}

type pairKey struct {
	a, b string
}

// makePairKey normalizes an unordered, case-insensitive name pair.
func makePairKey(m1, m2 string) pairKey {
	a := strings.ToLower(m1)
	b := strings.ToLower(m2)
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Catalog holds every card and fusion definition. It is built once at
// startup and read-only thereafter.
type Catalog struct {
	cards   []*Card
	byID    map[int]*Card
	byName  map[string]*Card
	fusions []*Fusion
	recipes map[pairKey]*Fusion
}

// Load builds a Catalog from already-parsed records. Malformed records
// (duplicate IDs or names, empty names, negative stats, unknown
// attributes) are fatal; nothing is deferred into play.
func Load(monsters []MonsterRecord, fusions []FusionRecord) (*Catalog, error) {
	cat := &Catalog{
		byID:    make(map[int]*Card, len(monsters)),
		byName:  make(map[string]*Card, len(monsters)),
		recipes: make(map[pairKey]*Fusion, len(fusions)),
	}

	for i, rec := range monsters {
		card, err := buildCard(rec.ID, rec.Name, rec.Type, rec.ATK, rec.DEF, rec.Attribute, rec.Level)
		if err != nil {
			return nil, fmt.Errorf("monster record %d: %w", i, err)
		}
		if _, ok := cat.byID[card.ID]; ok {
			return nil, fmt.Errorf("monster record %d: duplicate card id %d", i, card.ID)
		}
		key := strings.ToLower(card.Name)
		if _, ok := cat.byName[key]; ok {
			return nil, fmt.Errorf("monster record %d: duplicate card name %q", i, card.Name)
		}
		cat.cards = append(cat.cards, card)
		cat.byID[card.ID] = card
		cat.byName[key] = card
	}

	for i, rec := range fusions {
		if rec.Material1 == "" || rec.Material2 == "" {
			return nil, fmt.Errorf("fusion record %d: missing material name", i)
		}
		result, err := buildCard(fusionIDBase+i, rec.Result, rec.ResultType,
			rec.ResultATK, rec.ResultDEF, rec.ResultAttribute, FusionResultLevel)
		if err != nil {
			return nil, fmt.Errorf("fusion record %d: %w", i, err)
		}
		key := makePairKey(rec.Material1, rec.Material2)
		if _, ok := cat.recipes[key]; ok {
			return nil, fmt.Errorf("fusion record %d: duplicate recipe %q + %q", i, rec.Material1, rec.Material2)
		}
		fusion := &Fusion{Material1: rec.Material1, Material2: rec.Material2, Result: result}
		cat.fusions = append(cat.fusions, fusion)
		cat.recipes[key] = fusion
	}

	return cat, nil
}

func buildCard(id int, name, cardType string, atk, def int, attribute string, level int) (*Card, error) {
	if name == "" {
		return nil, fmt.Errorf("card name is empty")
	}
	if atk < 0 || def < 0 {
		return nil, fmt.Errorf("card %q: negative stats (ATK %d, DEF %d)", name, atk, def)
	}
	attr, err := ParseAttribute(attribute)
	if err != nil {
		return nil, fmt.Errorf("card %q: %w", name, err)
	}
	star1, star2 := assignStars(attr, cardType)
	return &Card{
		ID:        id,
		Name:      name,
		Type:      cardType,
		ATK:       atk,
		DEF:       def,
		Attribute: attr,
		Level:     level,
		Star1:     star1,
		Star2:     star2,
	}, nil
}

// Cards returns the monster cards in load order.
func (c *Catalog) Cards() []*Card {
	out := make([]*Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// NumCards returns the number of monster cards.
func (c *Catalog) NumCards() int { return len(c.cards) }

// NumFusions returns the number of fusion recipes.
func (c *Catalog) NumFusions() int { return len(c.fusions) }

// CardByID looks up a monster card by its record ID.
func (c *Catalog) CardByID(id int) (*Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// CardByName looks up a monster card by name, case-insensitively.
func (c *Catalog) CardByName(name string) (*Card, bool) {
	card, ok := c.byName[strings.ToLower(name)]
	return card, ok
}

// FusionFor returns the result card for an unordered material name pair.
// FusionFor(a, b) and FusionFor(b, a) are identical by construction.
func (c *Catalog) FusionFor(name1, name2 string) (*Card, bool) {
	fusion, ok := c.recipes[makePairKey(name1, name2)]
	if !ok {
		return nil, false
	}
	return fusion.Result, true
}

// RandomDeck draws a shuffled deck of the given size from the catalog,
// clamped to the legal deck size range. The catalog is duplicated if it
// holds fewer cards than requested.
func (c *Catalog) RandomDeck(r *rand.Rand, size int) []*Card {
	size = clampDeckSize(size)
	pool := c.Cards()
	for len(pool) < size {
		pool = append(pool, c.cards...)
	}
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:size]
}

// Deal splits a shuffled copy of the catalog into two decks of the given
// size, one per player.
func (c *Catalog) Deal(r *rand.Rand, size int) ([]*Card, []*Card) {
	size = clampDeckSize(size)
	pool := c.Cards()
	for len(pool) < size*2 {
		pool = append(pool, c.cards...)
	}
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:size], pool[size : size*2]
}

func clampDeckSize(size int) int {
	if size < MinDeckSize {
		return MinDeckSize
	}
	if size > MaxDeckSize {
		return MaxDeckSize
	}
	return size
}
