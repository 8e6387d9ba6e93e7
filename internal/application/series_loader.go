package application

import (
	"context"
	"fmt"

	"wadofetch/internal/domain"
	"wadofetch/internal/ports"
)

// SeriesStep is the result of loading one series: its identity and the raw
// instance records retrieved for it.
type SeriesStep struct {
	StudyInstanceUID  string
	SeriesInstanceUID string
	Instances         []domain.AttributeMap
}

// SeriesLoader is a single-study, one-series-at-a-time cursor over an
// ordered list of series UIDs. It is pending while UIDs remain and exhausted
// once the queue empties; an exhausted loader never becomes pending again
// and is not reusable.
type SeriesLoader struct {
	client   ports.MetadataClient
	studyUID string
	queue    []string
}

func NewSeriesLoader(client ports.MetadataClient, studyUID string, seriesUIDs []string) *SeriesLoader {
	queue := make([]string, len(seriesUIDs))
	copy(queue, seriesUIDs)
	return &SeriesLoader{client: client, studyUID: studyUID, queue: queue}
}

// HasNext reports whether any series remain to be loaded.
func (l *SeriesLoader) HasNext() bool {
	return len(l.queue) > 0
}

// Next dequeues the head series UID and retrieves that series' raw instance
// records. Each UID is consumed exactly once, in queue order: a retrieval
// failure propagates to the caller and the UID is not re-enqueued.
//
// Calling Next on an exhausted loader is a programming error and panics.
func (l *SeriesLoader) Next(ctx context.Context) (SeriesStep, error) {
	if !l.HasNext() {
		panic("application: SeriesLoader.Next called on exhausted loader")
	}

	seriesUID := l.queue[0]
	l.queue = l.queue[1:]

	instances, err := l.client.RetrieveSeriesMetadata(ctx, l.studyUID, seriesUID)
	if err != nil {
		return SeriesStep{}, fmt.Errorf("retrieve series %s metadata: %w", seriesUID, err)
	}

	return SeriesStep{
		StudyInstanceUID:  l.studyUID,
		SeriesInstanceUID: seriesUID,
		Instances:         instances,
	}, nil
}
