package application

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"wadofetch/internal/domain"
)

var errNotStubbed = errors.New("call not stubbed")

// stubClient is a hand-rolled ports.MetadataClient fake with per-call
// function hooks and call counters.
type stubClient struct {
	studyFn  func(ctx context.Context, studyUID string) ([]domain.AttributeMap, error)
	seriesFn func(ctx context.Context, studyUID, seriesUID string) ([]domain.AttributeMap, error)
	searchFn func(ctx context.Context, studyUID string) ([]domain.AttributeMap, error)
	bulkFn   func(ctx context.Context, uri string) ([]byte, error)

	studyCalls  atomic.Int32
	seriesCalls atomic.Int32
	searchCalls atomic.Int32
	bulkCalls   atomic.Int32
}

func (s *stubClient) RetrieveStudyMetadata(ctx context.Context, studyUID string) ([]domain.AttributeMap, error) {
	s.studyCalls.Add(1)
	if s.studyFn == nil {
		return nil, errNotStubbed
	}
	return s.studyFn(ctx, studyUID)
}

func (s *stubClient) RetrieveSeriesMetadata(ctx context.Context, studyUID, seriesUID string) ([]domain.AttributeMap, error) {
	s.seriesCalls.Add(1)
	if s.seriesFn == nil {
		return nil, errNotStubbed
	}
	return s.seriesFn(ctx, studyUID, seriesUID)
}

func (s *stubClient) SearchSeries(ctx context.Context, studyUID string) ([]domain.AttributeMap, error) {
	s.searchCalls.Add(1)
	if s.searchFn == nil {
		return nil, errNotStubbed
	}
	return s.searchFn(ctx, studyUID)
}

func (s *stubClient) RetrieveBulkData(ctx context.Context, uri string) ([]byte, error) {
	s.bulkCalls.Add(1)
	if s.bulkFn == nil {
		return nil, errNotStubbed
	}
	return s.bulkFn(ctx, uri)
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.now
}

func (f *fixedClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// rawInstance builds a minimal instance attribute record for one SOP
// instance within a series.
func rawInstance(studyUID, seriesUID, sopUID string, extra domain.AttributeMap) domain.AttributeMap {
	record := domain.AttributeMap{
		domain.TagStudyInstanceUID:  {VR: "UI", Value: []any{studyUID}},
		domain.TagSeriesInstanceUID: {VR: "UI", Value: []any{seriesUID}},
		domain.TagSOPInstanceUID:    {VR: "UI", Value: []any{sopUID}},
	}
	for tag, attr := range extra {
		record[tag] = attr
	}
	return record
}

// rawSeries builds a series-level record as returned by a QIDO series
// search.
func rawSeries(seriesUID, modality string, seriesNumber float64) domain.AttributeMap {
	return domain.AttributeMap{
		domain.TagSeriesInstanceUID: {VR: "UI", Value: []any{seriesUID}},
		domain.TagModality:          {VR: "CS", Value: []any{modality}},
		domain.TagSeriesNumber:      {VR: "IS", Value: []any{seriesNumber}},
	}
}
