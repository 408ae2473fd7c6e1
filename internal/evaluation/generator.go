package evaluation

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

const (
	MinTable        = 1
	MaxTable        = 10
	MaxFactor       = 10
	DefaultPerTable = 5
	// MaxPerTable is the number of distinct multipliers in [0, MaxFactor].
	MaxPerTable = MaxFactor + 1
)

// Generator builds shuffled question sets. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator uses src for sampling and shuffling; a nil src seeds from the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

func (g *Generator) Generate(tables []int, perTable int) ([]Question, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables selected", ErrInvalidInput)
	}
	if perTable < 1 || perTable > MaxPerTable {
		return nil, fmt.Errorf("%w: questions per table must be between 1 and %d, got %d", ErrInvalidInput, MaxPerTable, perTable)
	}

	selected, err := normalizeTables(tables)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	questions := make([]Question, 0, len(selected)*perTable)
	for _, t := range selected {
		for _, b := range g.rng.Perm(MaxPerTable)[:perTable] {
			questions = append(questions, NewQuestion(t, b))
		}
	}

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

// normalizeTables validates the range and returns the tables sorted and de-duplicated.
func normalizeTables(tables []int) ([]int, error) {
	seen := make(map[int]struct{}, len(tables))
	out := make([]int, 0, len(tables))
	for _, t := range tables {
		if !ValidTable(t) {
			return nil, fmt.Errorf("%w: table %d out of range %d-%d", ErrInvalidInput, t, MinTable, MaxTable)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Ints(out)
	return out, nil
}

func ValidTable(t int) bool {
	return t >= MinTable && t <= MaxTable
}
