package application

import (
	"context"
	"encoding/binary"
	"fmt"

	"golang.org/x/sync/errgroup"

	"wadofetch/internal/domain"
	"wadofetch/internal/ports"
)

// PaletteFetcher retrieves and decodes Palette Color LUT channels from bulk
// data, memoizing assembled palettes in a PaletteCache.
type PaletteFetcher struct {
	client ports.MetadataClient
	cache  *PaletteCache
}

func NewPaletteFetcher(client ports.MetadataClient, cache *PaletteCache) *PaletteFetcher {
	return &PaletteFetcher{client: client, cache: cache}
}

// FetchChannel retrieves the bulk data referenced by the attribute at tag and
// decodes descriptor[0] lookup table entries, 8-bit or 16-bit little-endian
// unsigned depending on descriptor[2]. A missing or negative entry count in
// the descriptor is a DecodeError, as is a buffer too short for it; both are
// distinct from a transport failure.
func (f *PaletteFetcher) FetchChannel(ctx context.Context, instance domain.AttributeMap, tag string, descriptor []float64) ([]int, error) {
	uri := instance.GetBulkDataURI(tag)
	if uri == "" {
		return nil, fmt.Errorf("palette channel %s: %w", tag, domain.ErrMissingBulkDataURI)
	}

	entries := -1
	if len(descriptor) > 0 {
		entries = int(descriptor[0])
	}
	if entries < 0 {
		return nil, &domain.DecodeError{Tag: tag, Entries: entries}
	}

	bits := 8
	if len(descriptor) > 2 && int(descriptor[2]) == 16 {
		bits = 16
	}

	data, err := f.client.RetrieveBulkData(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("retrieve palette channel %s: %w", tag, err)
	}

	width := bits / 8
	if len(data) < entries*width {
		return nil, &domain.DecodeError{Tag: tag, Entries: entries, Bits: bits, Got: len(data)}
	}

	lut := make([]int, entries)
	for i := 0; i < entries; i++ {
		if bits == 16 {
			lut[i] = int(binary.LittleEndian.Uint16(data[i*2:]))
		} else {
			lut[i] = int(data[i])
		}
	}
	return lut, nil
}

// FetchPalette returns the palette for an instance with PALETTE COLOR
// photometric interpretation: from cache when the instance declares a known
// palette UID, otherwise by fetching the red, green and blue channels
// concurrently and caching the assembled result under a valid UID.
//
// All three channels are decoded with the red channel's descriptor; channel
// descriptors are assumed structurally identical across colors.
func (f *PaletteFetcher) FetchPalette(ctx context.Context, instance domain.AttributeMap, redDescriptor []float64) (domain.PaletteColors, error) {
	uid := instance.GetString(domain.TagPaletteColorLUTUID)

	if f.cache.IsValidUID(uid) {
		if colors, ok := f.cache.Get(uid); ok {
			return colors, nil
		}
	}

	colors := domain.PaletteColors{UID: uid}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		lut, err := f.FetchChannel(groupCtx, instance, domain.TagRedPaletteData, redDescriptor)
		colors.Red = lut
		return err
	})
	group.Go(func() error {
		lut, err := f.FetchChannel(groupCtx, instance, domain.TagGreenPaletteData, redDescriptor)
		colors.Green = lut
		return err
	})
	group.Go(func() error {
		lut, err := f.FetchChannel(groupCtx, instance, domain.TagBluePaletteData, redDescriptor)
		colors.Blue = lut
		return err
	})
	if err := group.Wait(); err != nil {
		return domain.PaletteColors{}, err
	}

	f.cache.Put(colors)
	return colors, nil
}
