package application

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"wadofetch/internal/domain"
)

// Normalizer turns raw instance attribute records into SopInstances and
// folds them into their owning Series inside one Study. A Normalizer is
// bound to one retrieval: it serializes all Study mutations behind its own
// mutex so NormalizeAll may run instance normalization concurrently.
type Normalizer struct {
	server   domain.Server
	palettes *PaletteFetcher

	mu sync.Mutex
}

func NewNormalizer(server domain.Server, palettes *PaletteFetcher) *Normalizer {
	return &Normalizer{server: server, palettes: palettes}
}

// Normalize builds a SopInstance from one raw attribute record, fetching
// palette data when the instance is palette-indexed, and appends it to its
// series within study, creating the series on first encounter.
func (n *Normalizer) Normalize(ctx context.Context, study *domain.Study, raw domain.AttributeMap) (*domain.SopInstance, error) {
	seriesUID := raw.GetString(domain.TagSeriesInstanceUID)
	sopUID := raw.GetString(domain.TagSOPInstanceUID)

	instance := n.newSopInstance(study.StudyInstanceUID, seriesUID, sopUID, raw)

	if instance.PhotometricInterpretation == "PALETTE COLOR" {
		if err := n.attachPalette(ctx, instance, raw); err != nil {
			return nil, fmt.Errorf("normalize instance %s: %w", sopUID, err)
		}
	}

	n.mu.Lock()
	series := study.AppendSeries(domain.NewSeries(raw))
	series.AppendInstance(instance)
	n.mu.Unlock()

	return instance, nil
}

// NormalizeAll normalizes every raw record concurrently and reports the
// first error. Within one series, instance order follows completion order
// rather than input order.
func (n *Normalizer) NormalizeAll(ctx context.Context, study *domain.Study, raws []domain.AttributeMap) ([]*domain.SopInstance, error) {
	instances := make([]*domain.SopInstance, len(raws))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, raw := range raws {
		i, raw := i, raw
		group.Go(func() error {
			instance, err := n.Normalize(groupCtx, study, raw)
			if err != nil {
				return err
			}
			instances[i] = instance
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return instances, nil
}

func (n *Normalizer) attachPalette(ctx context.Context, instance *domain.SopInstance, raw domain.AttributeMap) error {
	redDescriptor := domain.ParseFloatSlice(raw.GetString(domain.TagRedPaletteDescriptor))
	greenDescriptor := domain.ParseFloatSlice(raw.GetString(domain.TagGreenPaletteDescriptor))
	blueDescriptor := domain.ParseFloatSlice(raw.GetString(domain.TagBluePaletteDescriptor))

	colors, err := n.palettes.FetchPalette(ctx, raw, redDescriptor)
	if err != nil {
		return err
	}

	instance.PaletteColorLUTUID = colors.UID
	instance.RedPaletteData = colors.Red
	instance.GreenPaletteData = colors.Green
	instance.BluePaletteData = colors.Blue
	instance.RedPaletteDescriptor = redDescriptor
	instance.GreenPaletteDescriptor = greenDescriptor
	instance.BluePaletteDescriptor = blueDescriptor
	return nil
}

func (n *Normalizer) newSopInstance(studyUID, seriesUID, sopUID string, raw domain.AttributeMap) *domain.SopInstance {
	return &domain.SopInstance{
		SOPInstanceUID: sopUID,
		SOPClassUID:    raw.GetString(domain.TagSOPClassUID),
		ImageType:      raw.GetString(domain.TagImageType),
		Modality:       raw.GetString(domain.TagModality),
		InstanceNumber: raw.GetNumber(domain.TagInstanceNumber),

		ImagePositionPatient:    raw.GetString(domain.TagImagePositionPatient),
		ImageOrientationPatient: raw.GetString(domain.TagImageOrientationPatient),
		FrameOfReferenceUID:     raw.GetString(domain.TagFrameOfReferenceUID),
		SliceLocation:           raw.GetNumber(domain.TagSliceLocation),
		SliceThickness:          raw.GetNumber(domain.TagSliceThickness),
		SpacingBetweenSlices:    raw.GetString(domain.TagSpacingBetweenSlices),
		Laterality:              raw.GetString(domain.TagLaterality),
		ViewPosition:            raw.GetString(domain.TagViewPosition),
		AcquisitionDateTime:     raw.GetString(domain.TagAcquisitionDateTime),

		SamplesPerPixel:           raw.GetNumber(domain.TagSamplesPerPixel),
		PhotometricInterpretation: raw.GetString(domain.TagPhotometricInterpretation),
		PlanarConfiguration:       raw.GetNumber(domain.TagPlanarConfiguration),
		Rows:                      raw.GetNumber(domain.TagRows),
		Columns:                   raw.GetNumber(domain.TagColumns),
		PixelSpacing:              raw.GetString(domain.TagPixelSpacing),
		PixelAspectRatio:          raw.GetString(domain.TagPixelAspectRatio),
		BitsAllocated:             raw.GetNumber(domain.TagBitsAllocated),
		BitsStored:                raw.GetNumber(domain.TagBitsStored),
		HighBit:                   raw.GetNumber(domain.TagHighBit),
		PixelRepresentation:       raw.GetNumber(domain.TagPixelRepresentation),
		SmallestPixelValue:        raw.GetNumber(domain.TagSmallestImagePixelValue),
		LargestPixelValue:         raw.GetNumber(domain.TagLargestImagePixelValue),

		WindowCenter:     raw.GetString(domain.TagWindowCenter),
		WindowWidth:      raw.GetString(domain.TagWindowWidth),
		RescaleIntercept: raw.GetNumber(domain.TagRescaleIntercept),
		RescaleSlope:     raw.GetNumber(domain.TagRescaleSlope),
		RescaleType:      raw.GetString(domain.TagRescaleType),

		NumberOfFrames:        raw.GetNumber(domain.TagNumberOfFrames),
		FrameIncrementPointer: domain.FrameIncrementPointerName(raw),
		FrameTime:             raw.GetNumber(domain.TagFrameTime),
		FrameTimeVector:       domain.ParseFloatSlice(raw.GetString(domain.TagFrameTimeVector)),

		LossyImageCompression:       raw.GetString(domain.TagLossyImageCompression),
		DerivationDescription:       raw.GetString(domain.TagDerivationDescription),
		LossyImageCompressionRatio:  raw.GetString(domain.TagLossyImageCompressionRatio),
		LossyImageCompressionMethod: raw.GetString(domain.TagLossyImageCompressionMethod),

		EchoNumber:         raw.GetString(domain.TagEchoNumbers),
		ContrastBolusAgent: raw.GetString(domain.TagContrastBolusAgent),

		SourceImageInstanceUID: domain.SourceImageInstanceUID(raw),
		Radiopharmaceutical:    domain.RadiopharmaceuticalInfoFrom(raw),

		WadoURI:            domain.InstanceWadoURI(n.server, studyUID, seriesUID, sopUID),
		BaseWadoRsURI:      domain.InstanceWadoRsURI(n.server, studyUID, seriesUID, sopUID),
		WadoRsURI:          domain.InstanceFrameWadoRsURI(n.server, studyUID, seriesUID, sopUID, 1),
		WadoRoot:           n.server.WadoRoot,
		ImageRendering:     n.server.ImageRendering,
		ThumbnailRendering: n.server.ThumbnailRendering,
	}
}
