package evaluation_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

func TestGenerate(t *testing.T) {
	gen := evaluation.NewGenerator(rand.NewSource(42))

	t.Run("TwoTablesFivePerTable", func(t *testing.T) {
		questions, err := gen.Generate([]int{2, 5}, 5)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(questions) != 10 {
			t.Fatalf("expected 10 questions, got %d", len(questions))
		}

		seen := map[int]map[int]bool{2: {}, 5: {}}
		for _, q := range questions {
			if q.A != 2 && q.A != 5 {
				t.Errorf("unexpected table %d", q.A)
				continue
			}
			if q.Answer != q.A*q.B {
				t.Errorf("%d x %d should be %d, got %d", q.A, q.B, q.A*q.B, q.Answer)
			}
			if q.B < 0 || q.B > evaluation.MaxFactor {
				t.Errorf("multiplier %d out of range", q.B)
			}
			if seen[q.A][q.B] {
				t.Errorf("multiplier %d repeated for table %d", q.B, q.A)
			}
			seen[q.A][q.B] = true
		}
		if len(seen[2]) != 5 || len(seen[5]) != 5 {
			t.Errorf("expected 5 questions per table, got %d and %d", len(seen[2]), len(seen[5]))
		}
	})

	t.Run("CountIsTablesTimesPerTable", func(t *testing.T) {
		for _, tc := range []struct {
			tables   []int
			perTable int
		}{
			{[]int{1}, 1},
			{[]int{3, 7, 9}, 4},
			{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, evaluation.MaxPerTable},
		} {
			questions, err := gen.Generate(tc.tables, tc.perTable)
			if err != nil {
				t.Fatalf("Generate(%v, %d) failed: %v", tc.tables, tc.perTable, err)
			}
			if want := len(tc.tables) * tc.perTable; len(questions) != want {
				t.Errorf("Generate(%v, %d) returned %d questions, want %d", tc.tables, tc.perTable, len(questions), want)
			}
		}
	})

	t.Run("FullTableUsesEveryMultiplier", func(t *testing.T) {
		questions, err := gen.Generate([]int{7}, evaluation.MaxPerTable)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		got := map[int]bool{}
		for _, q := range questions {
			got[q.B] = true
		}
		for b := 0; b <= evaluation.MaxFactor; b++ {
			if !got[b] {
				t.Errorf("multiplier %d missing", b)
			}
		}
	})

	t.Run("DuplicateTablesCountOnce", func(t *testing.T) {
		questions, err := gen.Generate([]int{4, 4}, 3)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(questions) != 3 {
			t.Errorf("expected 3 questions, got %d", len(questions))
		}
	})

	t.Run("SameSeedSameSequence", func(t *testing.T) {
		first, err := evaluation.NewGenerator(rand.NewSource(7)).Generate([]int{3, 8}, 5)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		second, err := evaluation.NewGenerator(rand.NewSource(7)).Generate([]int{8, 3}, 5)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("seeded generators diverged:\n%v\n%v", first, second)
		}
	})
}

func TestGenerateInvalidInput(t *testing.T) {
	gen := evaluation.NewGenerator(rand.NewSource(1))

	cases := map[string]struct {
		tables   []int
		perTable int
	}{
		"EmptyTables":      {nil, 5},
		"PerTableTooLarge": {[]int{2}, 12},
		"PerTableZero":     {[]int{2}, 0},
		"TableTooSmall":    {[]int{0}, 5},
		"TableTooLarge":    {[]int{11}, 5},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			questions, err := gen.Generate(tc.tables, tc.perTable)
			if !errors.Is(err, evaluation.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if questions != nil {
				t.Errorf("expected no questions, got %v", questions)
			}
		})
	}
}
