package domain

// DICOM tags read by the metadata pipeline, in group/element order.
const (
	TagImageType             = "00080008"
	TagSOPClassUID           = "00080016"
	TagSOPInstanceUID        = "00080018"
	TagStudyDate             = "00080020"
	TagSeriesDate            = "00080021"
	TagAcquisitionDateTime   = "0008002A"
	TagSeriesTime            = "00080031"
	TagAccessionNumber       = "00080050"
	TagModality              = "00080060"
	TagModalitiesInStudy     = "00080061"
	TagInstitutionName       = "00080080"
	TagStudyDescription      = "00081030"
	TagSeriesDescription     = "0008103E"
	TagReferencedSOPUID      = "00081155"
	TagDerivationDescription = "00082111"
	TagSourceImageSequence   = "00082112"

	TagPatientName   = "00100010"
	TagPatientID     = "00100020"
	TagPatientAge    = "00101010"
	TagPatientSize   = "00101020"
	TagPatientWeight = "00101030"

	TagContrastBolusAgent           = "00180010"
	TagSliceThickness               = "00180050"
	TagEchoNumbers                  = "00180086"
	TagSpacingBetweenSlices         = "00180088"
	TagFrameTime                    = "00181063"
	TagFrameTimeVector              = "00181065"
	TagRadiopharmaceuticalStartTime = "00181072"
	TagRadionuclideTotalDose        = "00181074"
	TagRadionuclideHalfLife         = "00181075"
	TagViewPosition                 = "00185101"

	TagStudyInstanceUID        = "0020000D"
	TagSeriesInstanceUID       = "0020000E"
	TagSeriesNumber            = "00200011"
	TagInstanceNumber          = "00200013"
	TagImagePositionPatient    = "00200032"
	TagImageOrientationPatient = "00200037"
	TagFrameOfReferenceUID     = "00200052"
	TagLaterality              = "00200062"
	TagSliceLocation           = "00201041"
	TagStudyRelatedInstances   = "00201208"

	TagSamplesPerPixel             = "00280002"
	TagPhotometricInterpretation   = "00280004"
	TagPlanarConfiguration         = "00280006"
	TagNumberOfFrames              = "00280008"
	TagFrameIncrementPointer       = "00280009"
	TagRows                        = "00280010"
	TagColumns                     = "00280011"
	TagPixelSpacing                = "00280030"
	TagPixelAspectRatio            = "00280034"
	TagBitsAllocated               = "00280100"
	TagBitsStored                  = "00280101"
	TagHighBit                     = "00280102"
	TagPixelRepresentation         = "00280103"
	TagSmallestImagePixelValue     = "00280106"
	TagLargestImagePixelValue      = "00280107"
	TagWindowCenter                = "00281050"
	TagWindowWidth                 = "00281051"
	TagRescaleIntercept            = "00281052"
	TagRescaleSlope                = "00281053"
	TagRescaleType                 = "00281054"
	TagRedPaletteDescriptor        = "00281101"
	TagGreenPaletteDescriptor      = "00281102"
	TagBluePaletteDescriptor       = "00281103"
	TagPaletteColorLUTUID          = "00281199"
	TagRedPaletteData              = "00281201"
	TagGreenPaletteData            = "00281202"
	TagBluePaletteData             = "00281203"
	TagLossyImageCompression       = "00282110"
	TagLossyImageCompressionRatio  = "00282112"
	TagLossyImageCompressionMethod = "00282114"

	TagRadiopharmaceuticalInfoSeq = "00540016"
)
