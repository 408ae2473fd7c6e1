package roster

import (
	"errors"
	"fmt"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	List() []Student
	GetByID(id string) (*Student, error)
}

type staticRepository struct {
	students []Student
	byID     map[string]int
}

// NewStaticRepository serves a fixed, ordered roster.
func NewStaticRepository(students []Student) StudentRepository {
	byID := make(map[string]int, len(students))
	for i, s := range students {
		byID[s.ID] = i
	}
	return &staticRepository{students: append([]Student{}, students...), byID: byID}
}

func (r *staticRepository) List() []Student {
	return append([]Student{}, r.students...)
}

func (r *staticRepository) GetByID(id string) (*Student, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, id)
	}
	s := r.students[i]
	return &s, nil
}

func avatarURL(id string) string {
	return "https://i.pravatar.cc/150?u=" + id
}

// DefaultStudents is the class roster the service ships with.
var DefaultStudents = []Student{
	{ID: "1", FirstName: "Rafael Manuel", LastName: "Aranda Ortiz", Avatar: avatarURL("1")},
	{ID: "2", FirstName: "Jazmín Aylen", LastName: "Barrios Martínez", Avatar: avatarURL("2")},
	{ID: "3", FirstName: "Damayra", LastName: "Castro Cádiz", Avatar: avatarURL("3")},
	{ID: "4", FirstName: "Juana Antonia", LastName: "Penoy Escudero", Avatar: avatarURL("4")},
	{ID: "5", FirstName: "Ángela", LastName: "Flores Moreno", Avatar: avatarURL("5")},
	{ID: "6", FirstName: "Ainhoa", LastName: "Guerrero Alonso", Avatar: avatarURL("6")},
	{ID: "7", FirstName: "Cristian", LastName: "Medina Zarza", Avatar: avatarURL("7")},
	{ID: "8", FirstName: "Noara", LastName: "Morilla Vargas", Avatar: avatarURL("8")},
	{ID: "9", FirstName: "Raúl", LastName: "Núñez Ruiz", Avatar: avatarURL("9")},
	{ID: "10", FirstName: "Rafael", LastName: "Reyes Cortés", Avatar: avatarURL("10")},
	{ID: "11", FirstName: "Leopoldo", LastName: "Reyes Reyes", Avatar: avatarURL("11")},
	{ID: "12", FirstName: "Hach", LastName: "Said Burki", Avatar: avatarURL("12")},
	{ID: "13", FirstName: "Rosa Ángela", LastName: "Salguero Moreno", Avatar: avatarURL("13")},
	{ID: "14", FirstName: "Yeray", LastName: "Tendero Castillejo", Avatar: avatarURL("14")},
	{ID: "15", FirstName: "María", LastName: "Urbano Fernández", Avatar: avatarURL("15")},
}
