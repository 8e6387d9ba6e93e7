package application

import (
	"context"
	"fmt"

	"wadofetch/internal/domain"
	"wadofetch/internal/ports"
)

// Filters narrows a retrieval. SeriesInstanceUID restricts it to one series;
// in eager mode a failing series-scoped request falls back to the whole
// study once.
type Filters struct {
	SeriesInstanceUID string
}

// RetrieveService is the entry point of the acquisition pipeline: it picks
// the eager or lazy strategy for a server and builds the Study object.
type RetrieveService struct {
	server domain.Server
	client ports.MetadataClient
	cache  *PaletteCache
}

func NewRetrieveService(server domain.Server, client ports.MetadataClient, cache *PaletteCache) *RetrieveService {
	if cache == nil {
		cache = NewPaletteCache(nil)
	}

	return &RetrieveService{server: server, client: client, cache: cache}
}

// Retrieve loads study metadata from the server. With lazy loading enabled
// on the server descriptor only the first series (in policy order) is
// loaded, and the returned Study carries a SeriesLoader continuation handle
// while further series remain.
func (s *RetrieveService) Retrieve(ctx context.Context, studyUID string, filters Filters) (*domain.Study, error) {
	if s.server.EnableLazyLoad {
		return s.retrieveLazy(ctx, studyUID, filters)
	}
	return s.retrieveEager(ctx, studyUID, filters)
}

// retrieveEager fetches whole-study metadata, or whole-series metadata when
// a series filter is given. A series-scoped failure falls back exactly once
// to the whole study; a whole-study failure propagates unchanged.
func (s *RetrieveService) retrieveEager(ctx context.Context, studyUID string, filters Filters) (*domain.Study, error) {
	var raws []domain.AttributeMap
	var err error

	if filters.SeriesInstanceUID != "" {
		raws, err = s.client.RetrieveSeriesMetadata(ctx, studyUID, filters.SeriesInstanceUID)
		if err != nil {
			raws, err = s.client.RetrieveStudyMetadata(ctx, studyUID)
		}
	} else {
		raws, err = s.client.RetrieveStudyMetadata(ctx, studyUID)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieve study %s metadata: %w", studyUID, err)
	}

	study, _, err := s.buildStudy(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("build study %s: %w", studyUID, err)
	}
	return study, nil
}

// retrieveLazy queries the series index, orders it through the series
// ordering policy, loads the first series and leaves the rest behind a
// continuation handle on the Study.
func (s *RetrieveService) retrieveLazy(ctx context.Context, studyUID string, filters Filters) (*domain.Study, error) {
	seriesList, err := s.client.SearchSeries(ctx, studyUID)
	if err != nil {
		return nil, fmt.Errorf("search series of study %s: %w", studyUID, err)
	}

	policy := NewSeriesOrderingPolicy()
	orderedUIDs := policy.Order(seriesList, filters.SeriesInstanceUID)

	loader := NewSeriesLoader(s.client, studyUID, orderedUIDs)

	first, err := loader.Next(ctx)
	if err != nil {
		return nil, err
	}

	study, normalizer, err := s.buildStudy(ctx, first.Instances)
	if err != nil {
		return nil, fmt.Errorf("build study %s: %w", studyUID, err)
	}

	if loader.HasNext() {
		study.SeriesLoader = &seriesContinuation{
			loader:     loader,
			normalizer: normalizer,
			study:      study,
		}
	}
	return study, nil
}

// buildStudy creates a Study from the first instance's study-level
// attributes and normalizes every record into it.
func (s *RetrieveService) buildStudy(ctx context.Context, raws []domain.AttributeMap) (*domain.Study, *Normalizer, error) {
	if len(raws) == 0 {
		return nil, nil, domain.ErrNoInstances
	}

	study := domain.NewStudy(s.server, raws[0])
	normalizer := NewNormalizer(s.server, NewPaletteFetcher(s.client, s.cache))

	if _, err := normalizer.NormalizeAll(ctx, study, raws); err != nil {
		return nil, nil, err
	}
	return study, normalizer, nil
}

// seriesContinuation is the read-only handle attached to a lazily loaded
// Study: each Next pulls one more series into the same Study object. Series
// already loaded stay valid on the Study even if a later Next fails.
type seriesContinuation struct {
	loader     *SeriesLoader
	normalizer *Normalizer
	study      *domain.Study
}

func (c *seriesContinuation) HasNext() bool {
	return c.loader.HasNext()
}

func (c *seriesContinuation) Next(ctx context.Context) (*domain.Series, error) {
	step, err := c.loader.Next(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := c.normalizer.NormalizeAll(ctx, c.study, step.Instances); err != nil {
		return nil, err
	}

	series, ok := c.study.SeriesByUID(step.SeriesInstanceUID)
	if !ok {
		return nil, fmt.Errorf("series %s missing from study after load", step.SeriesInstanceUID)
	}
	return series, nil
}
