package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wadofetch/internal/domain"
)

type fakeContinuation struct {
	study   *domain.Study
	pending []*domain.Series
	err     error
}

func (f *fakeContinuation) HasNext() bool {
	return len(f.pending) > 0
}

func (f *fakeContinuation) Next(context.Context) (*domain.Series, error) {
	if f.err != nil {
		return nil, f.err
	}

	next := f.pending[0]
	f.pending = f.pending[1:]
	f.study.AppendSeries(next)
	return next, nil
}

func lazyStudy(pending ...*domain.Series) *domain.Study {
	study := domain.NewStudy(domain.Server{}, domain.AttributeMap{})
	study.AppendSeries(&domain.Series{SeriesInstanceUID: "S1"})
	study.SeriesLoader = &fakeContinuation{study: study, pending: pending}
	return study
}

func TestPullLazySeriesReportsProgress(t *testing.T) {
	study := lazyStudy(
		&domain.Series{SeriesInstanceUID: "S2"},
		&domain.Series{SeriesInstanceUID: "S3"},
	)

	var reports []string
	err := pullLazySeries(context.Background(), study, -1, func(status string) {
		reports = append(reports, status)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2 series loaded", "3 series loaded"}, reports)
	assert.Len(t, study.SeriesList, 3)
}

func TestPullLazySeriesHonorsStepLimit(t *testing.T) {
	study := lazyStudy(
		&domain.Series{SeriesInstanceUID: "S2"},
		&domain.Series{SeriesInstanceUID: "S3"},
	)

	err := pullLazySeries(context.Background(), study, 1, func(string) {})

	require.NoError(t, err)
	assert.Len(t, study.SeriesList, 2)
	assert.True(t, study.SeriesLoader.HasNext())
}

func TestPullLazySeriesWrapsLoadFailure(t *testing.T) {
	loadErr := errors.New("gateway timeout")
	study := domain.NewStudy(domain.Server{}, domain.AttributeMap{})
	study.SeriesLoader = &fakeContinuation{
		study:   study,
		pending: []*domain.Series{{SeriesInstanceUID: "S2"}},
		err:     loadErr,
	}

	err := pullLazySeries(context.Background(), study, -1, func(string) {})
	assert.ErrorIs(t, err, loadErr)
}

func TestFetchSpinnerModelShowsStatus(t *testing.T) {
	model := newFetchSpinnerModel("Retrieving study metadata...", nil, nil)

	updated, _ := model.Update(fetchStatusMsg{status: "2 series loaded"})
	m, ok := updated.(fetchSpinnerModel)
	require.True(t, ok)

	assert.Contains(t, m.View(), "Retrieving study metadata... (2 series loaded)")
}

func TestFetchSpinnerModelClearsViewWhenDone(t *testing.T) {
	model := newFetchSpinnerModel("Retrieving study metadata...", nil, nil)

	updated, _ := model.Update(fetchDoneMsg{err: nil})
	m, ok := updated.(fetchSpinnerModel)
	require.True(t, ok)

	assert.True(t, m.done)
	assert.Empty(t, m.View())
}
