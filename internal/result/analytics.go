package result

import (
	"math"
	"sort"
	"time"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

type StudentSummary struct {
	StudentID string             `json:"student_id"`
	Attempts  int                `json:"attempts"`
	Average   *int               `json:"average,omitempty"`
	Latest    *evaluation.Result `json:"latest,omitempty"`
}

type StudentAverage struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Average   int    `json:"average"`
	Attempts  int    `json:"attempts"`
}

type TimelinePoint struct {
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name,omitempty"`
}

type Overview struct {
	TotalResults  int              `json:"total_results"`
	GlobalAverage int              `json:"global_average"`
	Ranking       []StudentAverage `json:"ranking"`
	Timeline      []TimelinePoint  `json:"timeline"`
}

// averagePercent is the mean of score/total over the results, as a rounded percentage.
func averagePercent(results []evaluation.Result) int {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		if r.TotalQuestions > 0 {
			sum += float64(r.Score) / float64(r.TotalQuestions)
		}
	}
	return int(math.Round(sum / float64(len(results)) * 100))
}

func filterByStudent(results []evaluation.Result, studentID string) []evaluation.Result {
	out := []evaluation.Result{}
	for _, r := range results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

func Summarize(studentID string, results []evaluation.Result) StudentSummary {
	own := filterByStudent(results, studentID)
	summary := StudentSummary{StudentID: studentID, Attempts: len(own)}
	if len(own) == 0 {
		return summary
	}

	avg := averagePercent(own)
	summary.Average = &avg

	latest := own[0]
	for _, r := range own[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}
	summary.Latest = &latest
	return summary
}

// Ranking lists students with at least one result, best average first.
// Ties keep roster order.
func Ranking(students []roster.Student, results []evaluation.Result) []StudentAverage {
	ranking := []StudentAverage{}
	for _, s := range students {
		own := filterByStudent(results, s.ID)
		if len(own) == 0 {
			continue
		}
		ranking = append(ranking, StudentAverage{
			StudentID: s.ID,
			Name:      s.FirstName,
			Average:   averagePercent(own),
			Attempts:  len(own),
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Average > ranking[j].Average
	})
	return ranking
}

func Timeline(students []roster.Student, results []evaluation.Result) []TimelinePoint {
	names := make(map[string]string, len(students))
	for _, s := range students {
		names[s.ID] = s.FirstName
	}

	sorted := append([]evaluation.Result{}, results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]TimelinePoint, 0, len(sorted))
	for _, r := range sorted {
		points = append(points, TimelinePoint{
			Date:      r.Date,
			Score:     r.Percentage(),
			StudentID: r.StudentID,
			Name:      names[r.StudentID],
		})
	}
	return points
}

func BuildOverview(students []roster.Student, results []evaluation.Result) Overview {
	return Overview{
		TotalResults:  len(results),
		GlobalAverage: averagePercent(results),
		Ranking:       Ranking(students, results),
		Timeline:      Timeline(students, results),
	}
}
