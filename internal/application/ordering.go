package application

import (
	"sort"

	"wadofetch/internal/domain"
)

// SeriesInfo is the memoized per-series record the ordering policy compares
// on: recomputing it per comparison would be wasteful, and memoizing it
// keeps the order total even if the classification function were not pure.
type SeriesInfo struct {
	SeriesInstanceUID string
	Modality          string
	SeriesNumber      float64
	IsLowPriority     bool
}

// SeriesOrderingPolicy decides the retrieval order of a study's series for
// lazy loading: low-priority modalities last, series number ascending within
// a priority class. The memo is an explicit side table keyed by series UID
// rather than hidden state on the series records themselves.
type SeriesOrderingPolicy struct {
	isLowPriority func(modality string) bool
	memo          map[string]SeriesInfo
}

func NewSeriesOrderingPolicy() *SeriesOrderingPolicy {
	return &SeriesOrderingPolicy{
		isLowPriority: domain.IsLowPriorityModality,
		memo:          make(map[string]SeriesInfo),
	}
}

// Info returns the memoized info record for a raw series entry, computing it
// on first access.
func (p *SeriesOrderingPolicy) Info(series domain.AttributeMap) SeriesInfo {
	uid := series.GetString(domain.TagSeriesInstanceUID)
	if info, ok := p.memo[uid]; ok {
		return info
	}

	modality := series.GetString(domain.TagModality)
	info := SeriesInfo{
		SeriesInstanceUID: uid,
		Modality:          modality,
		SeriesNumber:      series.GetNumberDefault(domain.TagSeriesNumber, 0),
		IsLowPriority:     p.isLowPriority(modality),
	}
	p.memo[uid] = info
	return info
}

// Compare orders two raw series entries: negative when a sorts before b.
// Non-low-priority series always precede low-priority ones; ties break by
// ascending series number.
func (p *SeriesOrderingPolicy) Compare(a, b domain.AttributeMap) int {
	infoA := p.Info(a)
	infoB := p.Info(b)

	if !infoA.IsLowPriority && infoB.IsLowPriority {
		return -1
	}
	if infoA.IsLowPriority && !infoB.IsLowPriority {
		return 1
	}

	switch {
	case infoA.SeriesNumber < infoB.SeriesNumber:
		return -1
	case infoA.SeriesNumber > infoB.SeriesNumber:
		return 1
	default:
		return 0
	}
}

// Filter narrows a series list to the entry matching targetSeriesUID, or
// returns the list unchanged when no target is given.
func (p *SeriesOrderingPolicy) Filter(seriesList []domain.AttributeMap, targetSeriesUID string) []domain.AttributeMap {
	if targetSeriesUID == "" {
		return seriesList
	}

	filtered := make([]domain.AttributeMap, 0, 1)
	for _, series := range seriesList {
		if series.GetString(domain.TagSeriesInstanceUID) == targetSeriesUID {
			filtered = append(filtered, series)
		}
	}
	return filtered
}

// Order filters, sorts and projects a raw series list to an ordered list of
// series UIDs. An empty filter result falls back to the unfiltered list so a
// stale target UID degrades to whole-study order instead of nothing.
func (p *SeriesOrderingPolicy) Order(seriesList []domain.AttributeMap, targetSeriesUID string) []string {
	candidates := p.Filter(seriesList, targetSeriesUID)
	if len(candidates) == 0 {
		candidates = seriesList
	}

	sorted := make([]domain.AttributeMap, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return p.Compare(sorted[i], sorted[j]) < 0
	})

	uids := make([]string, 0, len(sorted))
	for _, series := range sorted {
		uids = append(uids, p.Info(series).SeriesInstanceUID)
	}
	return uids
}
