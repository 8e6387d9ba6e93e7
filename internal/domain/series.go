package domain

// Series groups the instances of one acquisition within a Study. Instances
// are append-only; their order is the arrival order within that series'
// fetch.
type Series struct {
	SeriesInstanceUID string
	SeriesDescription string
	Modality          string
	SeriesNumber      float64
	SeriesDate        string
	SeriesTime        string

	Instances []*SopInstance
}

// NewSeries builds a Series from the series-level attributes of an instance
// record that references it.
func NewSeries(instance AttributeMap) *Series {
	return &Series{
		SeriesInstanceUID: instance.GetString(TagSeriesInstanceUID),
		SeriesDescription: instance.GetString(TagSeriesDescription),
		Modality:          instance.GetString(TagModality),
		SeriesNumber:      instance.GetNumber(TagSeriesNumber),
		SeriesDate:        instance.GetString(TagSeriesDate),
		SeriesTime:        instance.GetString(TagSeriesTime),
	}
}

// AppendInstance adds a normalized instance to the end of the series.
func (s *Series) AppendInstance(instance *SopInstance) {
	s.Instances = append(s.Instances, instance)
}
