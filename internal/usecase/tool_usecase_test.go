package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porosemi/internal/domain/entity"
)

type fakeToolRepo struct {
	mu    sync.Mutex
	tools map[string]*entity.Tool
	next  int
}

func newFakeToolRepo() *fakeToolRepo {
	return &fakeToolRepo{tools: make(map[string]*entity.Tool)}
}

func (r *fakeToolRepo) Create(ctx context.Context, tool *entity.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	tool.ID = "tool" + string(rune('0'+r.next))
	cp := *tool
	r.tools[tool.ID] = &cp
	return nil
}

func (r *fakeToolRepo) GetByID(ctx context.Context, id string) (*entity.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.tools[id]
	return &cp, nil
}

func (r *fakeToolRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tool, int64, error) {
	return nil, 0, nil
}

func (r *fakeToolRepo) Update(ctx context.Context, tool *entity.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tool
	r.tools[tool.ID] = &cp
	return nil
}

func (r *fakeToolRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tools, id)
	return nil
}

func (r *fakeToolRepo) UpdateMedia(ctx context.Context, id string, url string, status entity.MediaStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tool := r.tools[id]
	if url != "" {
		tool.Media.URL = url
	}
	tool.Media.Status = status
	return nil
}

func (r *fakeToolRepo) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.tools[id].Media
	return &m, nil
}

func TestToolCreateRunsPipelineSynchronously(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	repo := newFakeToolRepo()

	uc := NewToolUseCase(repo, newTestPipeline(log, staging, blobs), blobs)

	tool, err := uc.Create(context.Background(), ToolInput{Title: "Figma"}, Upload{Data: []byte("icon"), MimeType: "image/png"})
	require.NoError(t, err)

	// Synchronous variant: the response already carries the terminal
	// media state, no polling needed.
	assert.Equal(t, entity.MediaStatusCompleted, tool.Media.Status)
	assert.NotEmpty(t, tool.Media.URL)
	assert.Len(t, staging.deleted, 1)
}

func TestToolCreateRejectsBadUpload(t *testing.T) {
	log := &eventLog{}
	repo := newFakeToolRepo()
	uc := NewToolUseCase(repo, newTestPipeline(log, &fakeStaging{log: log}, newFakeBlobs(log)), newFakeBlobs(log))

	_, err := uc.Create(context.Background(), ToolInput{Title: "Figma"}, Upload{Data: []byte("x"), MimeType: "text/plain"})
	require.Error(t, err)
	assert.Empty(t, repo.tools)
}

func TestToolDeleteRemovesBlob(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	repo := newFakeToolRepo()

	uc := NewToolUseCase(repo, newTestPipeline(log, staging, blobs), blobs)

	tool, err := uc.Create(context.Background(), ToolInput{Title: "Figma"}, Upload{Data: []byte("icon"), MimeType: "image/png"})
	require.NoError(t, err)
	require.Len(t, blobs.stored, 1)

	require.NoError(t, uc.Delete(context.Background(), tool.ID))
	assert.Empty(t, repo.tools)
	assert.Len(t, blobs.deleted, 1)
}
