package feedback

import (
	"fmt"
	"strings"
)

const (
	// FallbackMessage replaces the tutor comment whenever the provider cannot deliver one.
	FallbackMessage = "¡Buen intento! Sigue practicando las tablas."

	// NoMistakesLabel stands in for the mistakes list of a perfect score.
	NoMistakesLabel = "ninguno"
)

const promptTemplate = `
Actúa como un profesor de primaria motivador.
El alumno %s ha realizado un examen de tablas de multiplicar.
Resultado: %d/%d.
Errores cometidos: %s.

Escribe un comentario breve y motivador para el alumno (máximo 3 frases).
Si el resultado es perfecto, felicítalo efusivamente.
Si hay errores, dale un pequeño truco o consejo para las tablas en las que falló.
Idioma: Español.
`

func BuildPrompt(req Request) string {
	return fmt.Sprintf(promptTemplate, req.StudentName, req.Score, req.Total, describeMistakes(req))
}

func describeMistakes(req Request) string {
	if len(req.Missed) == 0 {
		return NoMistakesLabel
	}
	parts := make([]string, 0, len(req.Missed))
	for _, m := range req.Missed {
		parts = append(parts, fmt.Sprintf("%s (puso %d, era %d)", m.Question, m.UserAnswer, m.CorrectAnswer))
	}
	return strings.Join(parts, ", ")
}
