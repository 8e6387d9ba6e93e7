package domain

import "strings"

// Modalities whose series are ordered and loaded after everything else:
// structured reports, key object selections, presentation states and
// segmentations carry no renderable frames of their own.
var lowPriorityModalities = map[string]struct{}{
	"SR":  {},
	"KO":  {},
	"PR":  {},
	"SEG": {},
}

// IsLowPriorityModality reports whether series of the given modality should
// sort after regular image series.
func IsLowPriorityModality(modality string) bool {
	_, ok := lowPriorityModalities[strings.ToUpper(strings.TrimSpace(modality))]
	return ok
}
