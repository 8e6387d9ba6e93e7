package domain

import (
	"strconv"
	"strings"
)

// Attribute is a single tagged DICOM attribute as delivered by a DICOMweb
// metadata response: a value representation, an optional value list and an
// optional bulk data reference for values too large to inline.
type Attribute struct {
	VR          string `json:"vr,omitempty"`
	Value       []any  `json:"Value,omitempty"`
	BulkDataURI string `json:"BulkDataURI,omitempty"`
}

// AttributeMap is one tagged attribute record: a mapping from the 8-digit
// group/element tag to its attribute. This is the wire shape of a single
// instance (or series) entry in a DICOMweb JSON response.
type AttributeMap map[string]Attribute

// GetString returns the first value of the attribute at tag as a string, or
// the empty string when the attribute or its value list is absent.
func (m AttributeMap) GetString(tag string) string {
	return m.GetStringDefault(tag, "")
}

// GetStringDefault is GetString with an explicit fallback value.
func (m AttributeMap) GetStringDefault(tag, fallback string) string {
	value, ok := m.first(tag)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fallback
	}
}

// GetNumber returns the first value of the attribute at tag as a float64, or
// zero when the attribute or its value list is absent. IS and DS values
// transported as strings are parsed; a trailing unit suffix (AS values like
// "045Y") is ignored.
func (m AttributeMap) GetNumber(tag string) float64 {
	return m.GetNumberDefault(tag, 0)
}

// GetNumberDefault is GetNumber with an explicit fallback value.
func (m AttributeMap) GetNumberDefault(tag string, fallback float64) float64 {
	value, ok := m.first(tag)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		parsed, ok := parseLeadingFloat(strings.TrimSpace(v))
		if !ok {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// parseLeadingFloat parses the longest numeric prefix of s, so values with a
// trailing unit suffix still yield their number.
func parseLeadingFloat(s string) (float64, bool) {
	for end := len(s); end > 0; end-- {
		if value, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return value, true
		}
	}
	return 0, false
}

// GetName returns the Alphabetic component of the first person-name value of
// the attribute at tag, or the empty string when absent. Plain string values
// are accepted for servers that do not emit PN component groups.
func (m AttributeMap) GetName(tag string) string {
	value, ok := m.first(tag)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if alphabetic, ok := v["Alphabetic"].(string); ok {
			return alphabetic
		}
		return ""
	default:
		return ""
	}
}

// SequenceItem returns the item at index of the sequence attribute at tag as
// its own AttributeMap, reporting false when the attribute, value list or
// item is absent or not a sequence item.
func (m AttributeMap) SequenceItem(tag string, index int) (AttributeMap, bool) {
	attr, ok := m[tag]
	if !ok || index < 0 || index >= len(attr.Value) {
		return nil, false
	}

	switch item := attr.Value[index].(type) {
	case AttributeMap:
		return item, true
	case map[string]any:
		return attributeMapFromRaw(item), true
	default:
		return nil, false
	}
}

// GetBulkDataURI returns the bulk data reference of the attribute at tag, or
// the empty string when none is present.
func (m AttributeMap) GetBulkDataURI(tag string) string {
	return m[tag].BulkDataURI
}

func (m AttributeMap) first(tag string) (any, bool) {
	attr, ok := m[tag]
	if !ok || len(attr.Value) == 0 {
		return nil, false
	}
	return attr.Value[0], true
}

// attributeMapFromRaw rebuilds an AttributeMap from the generic JSON shape a
// nested sequence item decodes to. Entries that do not look like attributes
// are dropped rather than guessed at.
func attributeMapFromRaw(raw map[string]any) AttributeMap {
	item := make(AttributeMap, len(raw))
	for tag, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		var attr Attribute
		if vr, ok := fields["vr"].(string); ok {
			attr.VR = vr
		}
		if values, ok := fields["Value"].([]any); ok {
			attr.Value = values
		}
		if uri, ok := fields["BulkDataURI"].(string); ok {
			attr.BulkDataURI = uri
		}
		item[tag] = attr
	}
	return item
}

// ParseFloatSlice splits a backslash-delimited DICOM multi-value string into
// its numeric components. Unparseable components decode as 0; the empty
// string yields an empty slice.
func ParseFloatSlice(raw string) []float64 {
	if raw == "" {
		return []float64{}
	}

	parts := strings.Split(raw, `\`)
	result := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			value = 0
		}
		result = append(result, value)
	}
	return result
}
