package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStringReturnsFirstValue(t *testing.T) {
	m := AttributeMap{
		TagStudyInstanceUID: {VR: "UI", Value: []any{"1.2.3", "4.5.6"}},
	}

	assert.Equal(t, "1.2.3", m.GetString(TagStudyInstanceUID))
}

func TestGetStringDefaultWhenAbsent(t *testing.T) {
	m := AttributeMap{}

	assert.Equal(t, "", m.GetString(TagStudyInstanceUID))
	assert.Equal(t, "fallback", m.GetStringDefault(TagStudyInstanceUID, "fallback"))
}

func TestGetStringDefaultWhenValueListEmpty(t *testing.T) {
	m := AttributeMap{
		TagModality: {VR: "CS"},
	}

	assert.Equal(t, "none", m.GetStringDefault(TagModality, "none"))
}

func TestGetNumberParsesNumericAndStringValues(t *testing.T) {
	m := AttributeMap{
		TagSeriesNumber:   {VR: "IS", Value: []any{"3"}},
		TagInstanceNumber: {VR: "IS", Value: []any{float64(7)}},
		TagSliceLocation:  {VR: "DS", Value: []any{"-12.5 "}},
	}

	assert.Equal(t, 3.0, m.GetNumber(TagSeriesNumber))
	assert.Equal(t, 7.0, m.GetNumber(TagInstanceNumber))
	assert.Equal(t, -12.5, m.GetNumber(TagSliceLocation))
}

func TestGetNumberIgnoresTrailingUnitSuffix(t *testing.T) {
	m := AttributeMap{
		TagPatientAge: {VR: "AS", Value: []any{"045Y"}},
	}

	assert.Equal(t, 45.0, m.GetNumber(TagPatientAge))
}

func TestGetNumberDefaultWhenAbsentOrMalformed(t *testing.T) {
	m := AttributeMap{
		TagSeriesNumber: {VR: "IS", Value: []any{"not-a-number"}},
	}

	assert.Equal(t, 0.0, m.GetNumber(TagSeriesNumber))
	assert.Equal(t, 9.0, m.GetNumberDefault(TagSeriesNumber, 9))
	assert.Equal(t, 9.0, m.GetNumberDefault(TagInstanceNumber, 9))
}

func TestGetNameReadsAlphabeticComponent(t *testing.T) {
	m := AttributeMap{
		TagPatientName: {VR: "PN", Value: []any{map[string]any{"Alphabetic": "Doe^Jane"}}},
	}

	assert.Equal(t, "Doe^Jane", m.GetName(TagPatientName))
}

func TestGetNameAcceptsPlainString(t *testing.T) {
	m := AttributeMap{
		TagPatientName: {VR: "PN", Value: []any{"Doe^Jane"}},
	}

	assert.Equal(t, "Doe^Jane", m.GetName(TagPatientName))
}

func TestSequenceItemFromDecodedJSON(t *testing.T) {
	payload := `{
		"00082112": {"vr": "SQ", "Value": [
			{"00081155": {"vr": "UI", "Value": ["1.2.840.999"]}}
		]}
	}`

	var m AttributeMap
	require.NoError(t, json.Unmarshal([]byte(payload), &m))

	item, ok := m.SequenceItem(TagSourceImageSequence, 0)
	require.True(t, ok)
	assert.Equal(t, "1.2.840.999", item.GetString(TagReferencedSOPUID))

	_, ok = m.SequenceItem(TagSourceImageSequence, 1)
	assert.False(t, ok)
}

func TestSequenceItemFromAttributeMapLiteral(t *testing.T) {
	m := AttributeMap{
		TagRadiopharmaceuticalInfoSeq: {VR: "SQ", Value: []any{
			AttributeMap{
				TagRadionuclideHalfLife: {VR: "DS", Value: []any{"6586.2"}},
			},
		}},
	}

	item, ok := m.SequenceItem(TagRadiopharmaceuticalInfoSeq, 0)
	require.True(t, ok)
	assert.Equal(t, 6586.2, item.GetNumber(TagRadionuclideHalfLife))
}

func TestParseFloatSlice(t *testing.T) {
	assert.Equal(t, []float64{}, ParseFloatSlice(""))
	assert.Equal(t, []float64{256, 0, 16}, ParseFloatSlice(`256\0\16`))
	assert.Equal(t, []float64{1.5}, ParseFloatSlice("1.5"))
	assert.Equal(t, []float64{1, 0, 3}, ParseFloatSlice(`1\x\3`))
}

func TestGetBulkDataURI(t *testing.T) {
	m := AttributeMap{
		TagRedPaletteData: {VR: "OW", BulkDataURI: "https://pacs/bulk/red"},
	}

	assert.Equal(t, "https://pacs/bulk/red", m.GetBulkDataURI(TagRedPaletteData))
	assert.Equal(t, "", m.GetBulkDataURI(TagGreenPaletteData))
}
