package feedback

import "github.com/saulo-duarte/tabuada-lambda/internal/evaluation"

type Request struct {
	StudentName string                      `json:"student_name"`
	Score       int                         `json:"score"`
	Total       int                         `json:"total"`
	Missed      []evaluation.MissedQuestion `json:"missed"`
}

func NewRequest(studentName string, res evaluation.Result) Request {
	return Request{
		StudentName: studentName,
		Score:       res.Score,
		Total:       res.TotalQuestions,
		Missed:      res.MissedQuestions,
	}
}
