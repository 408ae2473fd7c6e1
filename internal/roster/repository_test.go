package roster_test

import (
	"errors"
	"testing"

	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

func TestStaticRepository(t *testing.T) {
	repo := roster.NewStaticRepository(roster.DefaultStudents)

	t.Run("ListKeepsOrder", func(t *testing.T) {
		students := repo.List()
		if len(students) != 15 {
			t.Fatalf("expected 15 students, got %d", len(students))
		}
		if students[0].ID != "1" || students[14].ID != "15" {
			t.Errorf("roster order changed: first %s, last %s", students[0].ID, students[14].ID)
		}

		students[0].FirstName = "changed"
		if repo.List()[0].FirstName == "changed" {
			t.Error("List must not expose the internal slice")
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		s, err := repo.GetByID("9")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if s.FullName() != "Raúl Núñez Ruiz" {
			t.Errorf("unexpected student %q", s.FullName())
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := repo.GetByID("99"); !errors.Is(err, roster.ErrStudentNotFound) {
			t.Errorf("expected ErrStudentNotFound, got %v", err)
		}
	})
}
