package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oversized(kb int) []byte {
	return make([]byte, kb*1024)
}

func qualities(s *fakeStaging) []int {
	var out []int
	for _, spec := range s.specs {
		out = append(out, spec.Quality)
	}
	return out
}

func TestTransformStopsWhenWithinBudget(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log, renditions: [][]byte{oversized(2000), oversized(500)}}

	p := newTestPipeline(log, staging, newFakeBlobs(log))
	buf, err := p.transform(context.Background(), "pub1", "image/png")
	require.NoError(t, err)

	assert.Len(t, buf, 500*1024)
	assert.Equal(t, []int{85, 75}, qualities(staging))
}

func TestTransformClampsToFloor(t *testing.T) {
	log := &eventLog{}
	// Always over budget: 85 then 75, then the step to 65 clamps to 70,
	// where the loop stops and the last buffer wins.
	staging := &fakeStaging{log: log, renditions: [][]byte{oversized(2000), oversized(1900), oversized(1800), oversized(1700)}}

	p := newTestPipeline(log, staging, newFakeBlobs(log))
	buf, err := p.transform(context.Background(), "pub1", "image/png")
	require.NoError(t, err)

	assert.Equal(t, []int{85, 75, 70}, qualities(staging))
	assert.Len(t, buf, 1800*1024)
}

func TestTransformAttemptCapBinds(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log, renditions: [][]byte{
		oversized(2000), oversized(1900), oversized(1800), oversized(1700), oversized(1600),
	}}

	cfg := testConfig()
	cfg.StartQuality = 100
	p := NewMediaPipelineUseCase(staging, newFakeBlobs(log), nil, cfg)

	// Exactly four fetches, never a fifth, and an oversized result is
	// still a success.
	buf, err := p.transform(context.Background(), "pub1", "image/png")
	require.NoError(t, err)
	assert.Equal(t, []int{100, 90, 80, 70}, qualities(staging))
	assert.Len(t, buf, 1700*1024)
}

func TestTransformIsDeterministic(t *testing.T) {
	run := func() []int {
		log := &eventLog{}
		staging := &fakeStaging{log: log, renditions: [][]byte{oversized(2000), oversized(1500), oversized(900)}}
		p := newTestPipeline(log, staging, newFakeBlobs(log))
		_, err := p.transform(context.Background(), "pub1", "image/jpeg")
		require.NoError(t, err)
		return qualities(staging)
	}

	first := run()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

func TestTransformPDFUsesFirstPageBounds(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log, renditions: [][]byte{oversized(100)}}

	p := newTestPipeline(log, staging, newFakeBlobs(log))
	_, err := p.transform(context.Background(), "pub1", "application/pdf")
	require.NoError(t, err)

	require.Len(t, staging.specs, 1)
	spec := staging.specs[0]
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 800, spec.MaxWidth)
	assert.Equal(t, 1000, spec.MaxHeight)
	assert.Equal(t, "webp", spec.Format)
}

func TestTransformImageHasNoPageBounds(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log, renditions: [][]byte{oversized(100)}}

	p := newTestPipeline(log, staging, newFakeBlobs(log))
	_, err := p.transform(context.Background(), "pub1", "image/webp")
	require.NoError(t, err)

	require.Len(t, staging.specs, 1)
	assert.Zero(t, staging.specs[0].Page)
	assert.Zero(t, staging.specs[0].MaxWidth)
}
