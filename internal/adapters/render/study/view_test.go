package study

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wadofetch/internal/domain"
)

func sampleStudy() *domain.Study {
	study := domain.NewStudy(domain.Server{Name: "test"}, domain.AttributeMap{
		domain.TagStudyInstanceUID: {VR: "UI", Value: []any{"1.2.3"}},
		domain.TagStudyDescription: {VR: "LO", Value: []any{"CHEST CT"}},
		domain.TagStudyDate:        {VR: "DA", Value: []any{"20250110"}},
		domain.TagPatientName:      {VR: "PN", Value: []any{"Doe^Jane"}},
		domain.TagPatientID:        {VR: "LO", Value: []any{"P-1"}},
	})

	ct := study.AppendSeries(&domain.Series{
		SeriesInstanceUID: "S1",
		SeriesNumber:      1,
		SeriesDescription: "AXIAL",
		Modality:          "CT",
	})
	ct.AppendInstance(&domain.SopInstance{SOPInstanceUID: "I1", InstanceNumber: 1})
	ct.AppendInstance(&domain.SopInstance{
		SOPInstanceUID:            "I2",
		InstanceNumber:            2,
		PhotometricInterpretation: "PALETTE COLOR",
	})

	study.AppendSeries(&domain.Series{
		SeriesInstanceUID: "S2",
		SeriesNumber:      99,
		Modality:          "SR",
	})

	return study
}

func TestRenderStudyTree(t *testing.T) {
	out, err := Render(sampleStudy(), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, "CHEST CT [1.2.3]")
	assert.Contains(t, out, "patient: Doe^Jane (P-1)")
	assert.Contains(t, out, "#1 AXIAL (CT)")
	assert.Contains(t, out, "instances: 2")
	assert.Contains(t, out, "#99 Series (SR)")
	assert.NotContains(t, out, "I1")
}

func TestRenderShowsInstancesOnRequest(t *testing.T) {
	out, err := Render(sampleStudy(), RenderOptions{ShowInstances: true})
	require.NoError(t, err)

	assert.Contains(t, out, "I1")
	assert.Contains(t, out, "I2  [palette]")
}

func TestRenderCapsInstanceListing(t *testing.T) {
	out, err := Render(sampleStudy(), RenderOptions{ShowInstances: true, MaxInstances: 1})
	require.NoError(t, err)

	assert.Contains(t, out, "I1")
	assert.NotContains(t, out, "I2")
	assert.Contains(t, out, "1 more")
}

func TestRenderEmptyStudy(t *testing.T) {
	study := domain.NewStudy(domain.Server{Name: "test"}, domain.AttributeMap{
		domain.TagStudyInstanceUID: {VR: "UI", Value: []any{"1.2.3"}},
	})

	out, err := Render(study, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, "Study [1.2.3]")
	assert.Contains(t, out, "patient: unknown")
	assert.Contains(t, out, "date: n/a")
	assert.Contains(t, out, "No series loaded.")
}

type stubContinuation struct{}

func (stubContinuation) HasNext() bool { return true }
func (stubContinuation) Next(context.Context) (*domain.Series, error) {
	return nil, nil
}

func TestRenderNotesPendingLazySeries(t *testing.T) {
	study := sampleStudy()
	study.SeriesLoader = stubContinuation{}

	out, err := Render(study, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, "More series available (lazy loading).")
}
