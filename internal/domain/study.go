package domain

import "context"

// SeriesContinuation is the read-only handle attached to a lazily loaded
// Study. Next pulls one more series into the same Study and returns it;
// HasNext reports whether any series remain.
type SeriesContinuation interface {
	HasNext() bool
	Next(ctx context.Context) (*Series, error)
}

// Study is the aggregate root of one retrieval: study-level attributes taken
// from the first normalized instance, plus the series discovered so far in
// discovery order. In lazy mode SeriesLoader is set while series remain.
type Study struct {
	StudyInstanceUID string
	AccessionNumber  string
	StudyDate        string
	StudyDescription string
	Modalities       string
	ImageCount       string
	InstitutionName  string

	PatientName   string
	PatientID     string
	PatientAge    float64
	PatientSize   float64
	PatientWeight float64

	WadoUriRoot string
	WadoRoot    string
	QidoRoot    string

	SeriesList []*Series

	SeriesLoader SeriesContinuation

	seriesByUID map[string]*Series
}

// NewStudy builds a Study from the study-level attributes of one instance
// record and the server it was retrieved from.
func NewStudy(server Server, instance AttributeMap) *Study {
	return &Study{
		StudyInstanceUID: instance.GetString(TagStudyInstanceUID),
		AccessionNumber:  instance.GetString(TagAccessionNumber),
		StudyDate:        instance.GetString(TagStudyDate),
		StudyDescription: instance.GetString(TagStudyDescription),
		Modalities:       instance.GetString(TagModalitiesInStudy),
		ImageCount:       instance.GetString(TagStudyRelatedInstances),
		InstitutionName:  instance.GetString(TagInstitutionName),
		PatientName:      instance.GetName(TagPatientName),
		PatientID:        instance.GetString(TagPatientID),
		PatientAge:       instance.GetNumber(TagPatientAge),
		PatientSize:      instance.GetNumber(TagPatientSize),
		PatientWeight:    instance.GetNumber(TagPatientWeight),
		WadoUriRoot:      server.WadoUriRoot,
		WadoRoot:         server.WadoRoot,
		QidoRoot:         server.QidoRoot,
		seriesByUID:      make(map[string]*Series),
	}
}

// SeriesByUID returns the series with the given UID, if discovered.
func (s *Study) SeriesByUID(uid string) (*Series, bool) {
	series, ok := s.seriesByUID[uid]
	return series, ok
}

// AppendSeries registers a new series at the end of the discovery order.
// A series UID is appended at most once; re-appending an existing UID is a
// no-op returning the already registered series.
func (s *Study) AppendSeries(series *Series) *Series {
	if existing, ok := s.seriesByUID[series.SeriesInstanceUID]; ok {
		return existing
	}

	if s.seriesByUID == nil {
		s.seriesByUID = make(map[string]*Series)
	}
	s.seriesByUID[series.SeriesInstanceUID] = series
	s.SeriesList = append(s.SeriesList, series)
	return series
}
