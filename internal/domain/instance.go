package domain

// RadiopharmaceuticalInfo carries the PET tracer attributes of an instance,
// populated only when the modality is PT and the radiopharmaceutical
// information sequence is present.
type RadiopharmaceuticalInfo struct {
	StartTime             string
	RadionuclideTotalDose float64
	RadionuclideHalfLife  float64
}

// SopInstance is one normalized DICOM object within a Series: a flat record
// of imaging attributes plus the retrieval URIs for its payload. Immutable
// once appended to its Series.
type SopInstance struct {
	SOPInstanceUID string
	SOPClassUID    string
	ImageType      string
	Modality       string
	InstanceNumber float64

	ImagePositionPatient    string
	ImageOrientationPatient string
	FrameOfReferenceUID     string
	SliceLocation           float64
	SliceThickness          float64
	SpacingBetweenSlices    string
	Laterality              string
	ViewPosition            string
	AcquisitionDateTime     string

	SamplesPerPixel           float64
	PhotometricInterpretation string
	PlanarConfiguration       float64
	Rows                      float64
	Columns                   float64
	PixelSpacing              string
	PixelAspectRatio          string
	BitsAllocated             float64
	BitsStored                float64
	HighBit                   float64
	PixelRepresentation       float64
	SmallestPixelValue        float64
	LargestPixelValue         float64

	WindowCenter     string
	WindowWidth      string
	RescaleIntercept float64
	RescaleSlope     float64
	RescaleType      string

	NumberOfFrames        float64
	FrameIncrementPointer string
	FrameTime             float64
	FrameTimeVector       []float64

	LossyImageCompression       string
	DerivationDescription       string
	LossyImageCompressionRatio  string
	LossyImageCompressionMethod string

	EchoNumber         string
	ContrastBolusAgent string

	SourceImageInstanceUID string

	Radiopharmaceutical *RadiopharmaceuticalInfo

	PaletteColorLUTUID     string
	RedPaletteData         []int
	GreenPaletteData       []int
	BluePaletteData        []int
	RedPaletteDescriptor   []float64
	GreenPaletteDescriptor []float64
	BluePaletteDescriptor  []float64

	WadoURI            string
	BaseWadoRsURI      string
	WadoRsURI          string
	WadoRoot           string
	ImageRendering     string
	ThumbnailRendering string
}

// FrameIncrementPointerName maps the frame increment pointer tag value of a
// multi-frame instance to the field it points at. Unknown pointers yield the
// empty string.
func FrameIncrementPointerName(instance AttributeMap) string {
	switch instance.GetString(TagFrameIncrementPointer) {
	case TagFrameTimeVector:
		return "frameTimeVector"
	case TagFrameTime:
		return "frameTime"
	default:
		return ""
	}
}

// SourceImageInstanceUID extracts the referenced SOP instance UID from the
// first item of the source image sequence, when present. It is used to link
// the instance from accompanying DICOM-SR documents.
func SourceImageInstanceUID(instance AttributeMap) string {
	item, ok := instance.SequenceItem(TagSourceImageSequence, 0)
	if !ok {
		return ""
	}
	return item.GetString(TagReferencedSOPUID)
}

// RadiopharmaceuticalInfoFrom returns the PET tracer info of an instance, or
// nil when the modality is not PT or the sequence is absent.
func RadiopharmaceuticalInfoFrom(instance AttributeMap) *RadiopharmaceuticalInfo {
	if instance.GetString(TagModality) != "PT" {
		return nil
	}

	item, ok := instance.SequenceItem(TagRadiopharmaceuticalInfoSeq, 0)
	if !ok {
		return nil
	}

	return &RadiopharmaceuticalInfo{
		StartTime:             item.GetString(TagRadiopharmaceuticalStartTime),
		RadionuclideTotalDose: item.GetNumber(TagRadionuclideTotalDose),
		RadionuclideHalfLife:  item.GetNumber(TagRadionuclideHalfLife),
	}
}
