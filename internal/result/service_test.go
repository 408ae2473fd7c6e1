package result_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/result"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

func newTestService(t *testing.T) result.ResultService {
	t.Helper()
	return result.NewService(openTestStore(t), roster.NewStaticRepository(roster.DefaultStudents))
}

func TestAppend(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Append(ctx, makeResult("2", 1, 8, 10)))
	require.NoError(t, svc.Append(ctx, makeResult("5", 2, 3, 5)))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "2", all[0].StudentID)
	require.Equal(t, "5", all[1].StudentID)

	t.Run("RejectsBrokenInvariant", func(t *testing.T) {
		bad := makeResult("2", 3, 8, 10)
		bad.MissedQuestions = bad.MissedQuestions[:1]
		require.ErrorIs(t, svc.Append(ctx, bad), result.ErrInvalidResult)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})
}

func TestStudentQueries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Append(ctx, makeResult("4", 10, 10, 10)))
	require.NoError(t, svc.Append(ctx, makeResult("4", 3, 5, 10)))
	require.NoError(t, svc.Append(ctx, makeResult("6", 4, 2, 5)))

	own, err := svc.ListByStudent(ctx, "4")
	require.NoError(t, err)
	require.Len(t, own, 2)

	summary, err := svc.StudentSummary(ctx, "4")
	require.NoError(t, err)
	require.Equal(t, 2, summary.Attempts)
	require.NotNil(t, summary.Average)
	require.Equal(t, 75, *summary.Average)
	require.Equal(t, 10, summary.Latest.Date.Day(), "latest is chosen by date, not insertion order")

	empty, err := svc.StudentSummary(ctx, "1")
	require.NoError(t, err)
	require.Zero(t, empty.Attempts)
	require.Nil(t, empty.Average)
	require.Nil(t, empty.Latest)

	_, err = svc.ListByStudent(ctx, "404")
	require.ErrorIs(t, err, roster.ErrStudentNotFound)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, r := range []evaluation.Result{
		makeResult("7", 20, 5, 10),
		makeResult("3", 11, 9, 10),
		makeResult("7", 15, 10, 10),
	} {
		require.NoError(t, svc.Append(ctx, r))
	}

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, overview.TotalResults)
	require.Equal(t, 80, overview.GlobalAverage)

	require.Len(t, overview.Ranking, 2)
	require.Equal(t, "Damayra", overview.Ranking[0].Name)
	require.Equal(t, 90, overview.Ranking[0].Average)
	require.Equal(t, "Cristian", overview.Ranking[1].Name)
	require.Equal(t, 75, overview.Ranking[1].Average)
	require.Equal(t, 2, overview.Ranking[1].Attempts)

	require.Len(t, overview.Timeline, 3)
	require.Equal(t, []int{11, 15, 20}, []int{
		overview.Timeline[0].Date.Day(),
		overview.Timeline[1].Date.Day(),
		overview.Timeline[2].Date.Day(),
	})
	require.Equal(t, 90, overview.Timeline[0].Score)
	require.Equal(t, "Damayra", overview.Timeline[0].Name)
}
