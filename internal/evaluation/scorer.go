package evaluation

type Scorecard struct {
	Score  int              `json:"score"`
	Missed []MissedQuestion `json:"missed"`
}

// Score counts correct answers and lists the misses in answer order.
func Score(answered []AnsweredQuestion) Scorecard {
	card := Scorecard{Missed: []MissedQuestion{}}
	for _, a := range answered {
		if a.Correct {
			card.Score++
			continue
		}
		card.Missed = append(card.Missed, MissedQuestion{
			Question:      a.Question.Label(),
			CorrectAnswer: a.Question.Answer,
			UserAnswer:    a.UserAnswer,
		})
	}
	return card
}
