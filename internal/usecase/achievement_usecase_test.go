package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porosemi/internal/domain/entity"
)

type fakeAchievementRepo struct {
	mu   sync.Mutex
	recs map[string]*entity.Achievement
	next int
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{recs: make(map[string]*entity.Achievement)}
}

func (r *fakeAchievementRepo) Create(ctx context.Context, a *entity.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	a.ID = "ach" + string(rune('0'+r.next))
	cp := *a
	r.recs[a.ID] = &cp
	return nil
}

func (r *fakeAchievementRepo) GetByID(ctx context.Context, id string) (*entity.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.recs[id]
	return &cp, nil
}

func (r *fakeAchievementRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Achievement, int64, error) {
	return nil, 0, nil
}

func (r *fakeAchievementRepo) Update(ctx context.Context, a *entity.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.recs[a.ID] = &cp
	return nil
}

func (r *fakeAchievementRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.recs, id)
	return nil
}

func (r *fakeAchievementRepo) UpdateMedia(ctx context.Context, id string, url string, status entity.MediaStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.recs[id]
	if url != "" {
		rec.Media.URL = url
	}
	rec.Media.Status = status
	return nil
}

func (r *fakeAchievementRepo) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.recs[id].Media
	return &m, nil
}

func waitForStatus(t *testing.T, repo *fakeAchievementRepo, id string, want entity.MediaStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m, err := repo.GetMedia(context.Background(), id)
		require.NoError(t, err)
		if m.Status == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("entity %s never reached status %s", id, want)
}

func TestAchievementCreateWithoutUpload(t *testing.T) {
	log := &eventLog{}
	repo := newFakeAchievementRepo()
	uc := NewAchievementUseCase(repo, newTestPipeline(log, &fakeStaging{log: log}, newFakeBlobs(log)), newFakeBlobs(log))

	a, err := uc.Create(context.Background(), AchievementInput{Title: "Cert", Issuer: "Org"}, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.MediaStatusNone, a.Media.Status)
	assert.Empty(t, a.Media.URL)
}

func TestAchievementCreateWithUploadReturnsPending(t *testing.T) {
	log := &eventLog{}
	repo := newFakeAchievementRepo()
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	uc := NewAchievementUseCase(repo, newTestPipeline(log, staging, blobs), blobs)

	a, err := uc.Create(context.Background(), AchievementInput{Title: "Cert", Issuer: "Org"}, &Upload{Data: []byte("img"), MimeType: "image/png"})
	require.NoError(t, err)

	// The response never waits on the pipeline; the record reports
	// pending until the detached run commits.
	assert.Equal(t, entity.MediaStatusPending, a.Media.Status)

	waitForStatus(t, repo, a.ID, entity.MediaStatusCompleted)
	m, err := repo.GetMedia(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Contains(t, m.URL, a.ID)
}

func TestAchievementCreateRejectsOversizedUpload(t *testing.T) {
	log := &eventLog{}
	repo := newFakeAchievementRepo()
	uc := NewAchievementUseCase(repo, newTestPipeline(log, &fakeStaging{log: log}, newFakeBlobs(log)), newFakeBlobs(log))

	_, err := uc.Create(context.Background(), AchievementInput{Title: "Cert", Issuer: "Org"},
		&Upload{Data: make([]byte, 11*1024*1024), MimeType: "image/png"})
	require.Error(t, err)
	assert.Empty(t, repo.recs)
}

func TestAchievementUpdateWithNewUploadRePends(t *testing.T) {
	log := &eventLog{}
	repo := newFakeAchievementRepo()
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	uc := NewAchievementUseCase(repo, newTestPipeline(log, staging, blobs), blobs)

	a, err := uc.Create(context.Background(), AchievementInput{Title: "Cert", Issuer: "Org"}, &Upload{Data: []byte("img"), MimeType: "image/png"})
	require.NoError(t, err)
	waitForStatus(t, repo, a.ID, entity.MediaStatusCompleted)
	firstURL, _ := repo.GetMedia(context.Background(), a.ID)

	_, err = uc.Update(context.Background(), a.ID, AchievementInput{Title: "Cert v2", Issuer: "Org"}, &Upload{Data: []byte("img2"), MimeType: "image/png"})
	require.NoError(t, err)
	waitForStatus(t, repo, a.ID, entity.MediaStatusCompleted)

	second, err := repo.GetMedia(context.Background(), a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, firstURL.URL, second.URL)

	// The superseded blob is deleted after the record points at the new
	// one; give the tail of the run a moment to finish.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		blobs.mu.Lock()
		n := len(blobs.deleted)
		blobs.mu.Unlock()
		if n == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("superseded blob was never deleted")
}

func TestAchievementDeleteRemovesBlob(t *testing.T) {
	log := &eventLog{}
	repo := newFakeAchievementRepo()
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	uc := NewAchievementUseCase(repo, newTestPipeline(log, staging, blobs), blobs)

	a, err := uc.Create(context.Background(), AchievementInput{Title: "Cert", Issuer: "Org"}, &Upload{Data: []byte("img"), MimeType: "image/png"})
	require.NoError(t, err)
	waitForStatus(t, repo, a.ID, entity.MediaStatusCompleted)

	require.NoError(t, uc.Delete(context.Background(), a.ID))
	assert.Empty(t, repo.recs)
	assert.Len(t, blobs.deleted, 1)
}
