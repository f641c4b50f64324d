package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/de-tools/atlas-report/pkg/services/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, path string) (*domain.AnalyticsInput, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsInput), args.Error(1)
}

type mockSampler struct {
	mock.Mock
}

func (m *mockSampler) Sample() domain.SyntheticSeries {
	args := m.Called()
	return args.Get(0).(domain.SyntheticSeries)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, series domain.SyntheticSeries) ([]domain.ChartArtifact, error) {
	args := m.Called(ctx, series)
	return args.Get(0).([]domain.ChartArtifact), args.Error(1)
}

type mockAssembler struct {
	mock.Mock
}

func (m *mockAssembler) Assemble(
	ctx context.Context,
	input *domain.AnalyticsInput,
	charts []domain.ChartArtifact,
) (*domain.ReportDocument, error) {
	args := m.Called(ctx, input, charts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportDocument), args.Error(1)
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Save(ctx context.Context, doc *domain.ReportDocument, path string) error {
	return m.Called(ctx, doc, path).Error(0)
}

type mocks struct {
	loader    *mockLoader
	sampler   *mockSampler
	renderer  *mockRenderer
	assembler *mockAssembler
	writer    *mockWriter
}

func newMockedRunner() (*Runner, mocks) {
	m := mocks{
		loader:    new(mockLoader),
		sampler:   new(mockSampler),
		renderer:  new(mockRenderer),
		assembler: new(mockAssembler),
		writer:    new(mockWriter),
	}
	r := NewRunner(m.loader, m.sampler, m.renderer, m.assembler, m.writer, RunnerConfig{
		InputPath:  "in.json",
		OutputPath: "out.docx",
	})
	return r, m
}

func TestRunner_Run_StagesInOrder(t *testing.T) {
	// Given
	r, m := newMockedRunner()
	input := &domain.AnalyticsInput{}
	series := domain.SyntheticSeries{}
	artifacts := []domain.ChartArtifact{{Path: "incidents.png"}}
	doc := &domain.ReportDocument{}
	table := doc.AddTable([]string{"h"})
	table.AddRow([]string{"a"})
	table.AddRow([]string{"b"})

	m.loader.On("Load", mock.Anything, "in.json").Return(input, nil)
	m.sampler.On("Sample").Return(series)
	m.renderer.On("Render", mock.Anything, series).Return(artifacts, nil)
	m.assembler.On("Assemble", mock.Anything, input, artifacts).Return(doc, nil)
	m.writer.On("Save", mock.Anything, doc, "out.docx").Return(nil)

	// When
	summary, err := r.Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, "out.docx", summary.OutputPath)
	assert.Equal(t, 2, summary.ServiceCount)
	assert.Equal(t, artifacts, summary.Charts)
	m.loader.AssertExpectations(t)
	m.renderer.AssertExpectations(t)
	m.assembler.AssertExpectations(t)
	m.writer.AssertExpectations(t)
}

func TestRunner_Run_MissingInput_NoChartsRendered(t *testing.T) {
	// Given
	r, m := newMockedRunner()
	m.loader.On("Load", mock.Anything, "in.json").Return(nil, loader.ErrInputNotFound)

	// When
	_, err := r.Run(context.Background())

	// Then
	assert.ErrorIs(t, err, loader.ErrInputNotFound)
	m.sampler.AssertNotCalled(t, "Sample")
	m.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	m.writer.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunner_Run_AssemblyFailure_NothingSaved(t *testing.T) {
	// Given
	r, m := newMockedRunner()
	input := &domain.AnalyticsInput{}
	m.loader.On("Load", mock.Anything, "in.json").Return(input, nil)
	m.sampler.On("Sample").Return(domain.SyntheticSeries{})
	m.renderer.On("Render", mock.Anything, mock.Anything).Return([]domain.ChartArtifact{}, nil)
	m.assembler.On("Assemble", mock.Anything, input, mock.Anything).
		Return(nil, &domain.MissingFieldError{Path: "services"})

	// When
	_, err := r.Run(context.Background())

	// Then
	assert.ErrorIs(t, err, domain.ErrMissingField)
	m.renderer.AssertExpectations(t)
	m.writer.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunner_Run_RenderFailure_Wrapped(t *testing.T) {
	r, m := newMockedRunner()
	boom := errors.New("boom")
	m.loader.On("Load", mock.Anything, "in.json").Return(&domain.AnalyticsInput{}, nil)
	m.sampler.On("Sample").Return(domain.SyntheticSeries{})
	m.renderer.On("Render", mock.Anything, mock.Anything).Return([]domain.ChartArtifact(nil), boom)

	_, err := r.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to render charts")
}
