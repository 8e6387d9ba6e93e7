package ports

import (
	"context"

	"wadofetch/internal/domain"
)

// MetadataClient is the DICOMweb transport boundary consumed by the
// acquisition pipeline. All calls block until the remote request completes
// or fails; failures surface as transport errors to the caller.
type MetadataClient interface {
	// RetrieveStudyMetadata fetches the instance attribute records of a
	// whole study (WADO-RS study metadata).
	RetrieveStudyMetadata(ctx context.Context, studyUID string) ([]domain.AttributeMap, error)

	// RetrieveSeriesMetadata fetches the instance attribute records of one
	// series (WADO-RS series metadata).
	RetrieveSeriesMetadata(ctx context.Context, studyUID, seriesUID string) ([]domain.AttributeMap, error)

	// SearchSeries queries the series index of a study (QIDO-RS), returning
	// series-level attribute records.
	SearchSeries(ctx context.Context, studyUID string) ([]domain.AttributeMap, error)

	// RetrieveBulkData fetches the raw bytes referenced by a bulk data URI.
	RetrieveBulkData(ctx context.Context, uri string) ([]byte, error)
}
