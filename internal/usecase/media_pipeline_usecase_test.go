package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/service"
	"porosemi/internal/infrastructure/task"
)

// eventLog records the order of side effects across the fakes so tests
// can assert on commit ordering.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type fakeStaging struct {
	log         *eventLog
	putErr      error
	renditions  [][]byte
	renditionIx int
	fetchErr    error
	deleted     []string
	specs       []service.TransformSpec
	mu          sync.Mutex
}

func (s *fakeStaging) Put(ctx context.Context, data []byte, publicID, folder string) (*service.StagedObject, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	s.log.add("stage:%s", publicID)
	return &service.StagedObject{PublicID: publicID, URL: "https://staging.test/" + publicID}, nil
}

func (s *fakeStaging) FetchRendition(ctx context.Context, publicID string, spec service.TransformSpec) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	s.specs = append(s.specs, spec)
	if s.renditionIx < len(s.renditions) {
		b := s.renditions[s.renditionIx]
		s.renditionIx++
		return b, nil
	}
	return []byte("rendition"), nil
}

func (s *fakeStaging) Delete(ctx context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, publicID)
	s.log.add("unstage:%s", publicID)
	return nil
}

type fakeBlobs struct {
	log     *eventLog
	putErr  error
	mu      sync.Mutex
	stored  map[string][]byte
	deleted []string
}

func newFakeBlobs(log *eventLog) *fakeBlobs {
	return &fakeBlobs{log: log, stored: make(map[string][]byte)}
}

func (b *fakeBlobs) Put(ctx context.Context, filename string, data []byte, contentType string) error {
	if b.putErr != nil {
		return b.putErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stored[filename] = data
	b.log.add("blob-put")
	return nil
}

func (b *fakeBlobs) Get(ctx context.Context, filename string) (*service.Blob, error) {
	return nil, errors.New("not implemented")
}

func (b *fakeBlobs) Delete(ctx context.Context, filename string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = append(b.deleted, filename)
	b.log.add("blob-delete:%s", filename)
	return nil
}

func (b *fakeBlobs) URL(filename string) string {
	return "http://files.test/api/files/" + filename
}

func (b *fakeBlobs) Close() error { return nil }

type fakeRecords struct {
	log       *eventLog
	mu        sync.Mutex
	url       string
	status    entity.MediaStatus
	getErr    error
	updateErr error
}

func (r *fakeRecords) UpdateMedia(ctx context.Context, id string, url string, status entity.MediaStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if url != "" {
		r.url = url
	}
	r.status = status
	r.log.add("record-update:%s", status)
	return nil
}

func (r *fakeRecords) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return &entity.Media{URL: r.url, Status: r.status}, nil
}

func (r *fakeRecords) state() (string, entity.MediaStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.url, r.status
}

func testConfig() MediaPipelineConfig {
	return MediaPipelineConfig{
		StagingFolder:  "staging",
		MaxUploadBytes: 10 * 1024 * 1024,
		TargetSizeKB:   1024,
		StartQuality:   85,
		QualityStep:    10,
		QualityFloor:   70,
		MaxAttempts:    4,
	}
}

func newTestPipeline(log *eventLog, staging *fakeStaging, blobs *fakeBlobs) *MediaPipelineUseCase {
	return NewMediaPipelineUseCase(staging, blobs, task.NewRunner(), testConfig())
}

func TestValidate(t *testing.T) {
	p := newTestPipeline(&eventLog{}, &fakeStaging{log: &eventLog{}}, newFakeBlobs(&eventLog{}))

	assert.Error(t, p.Validate(Upload{Data: nil, MimeType: "image/png"}))
	assert.Error(t, p.Validate(Upload{Data: make([]byte, 11*1024*1024), MimeType: "image/png"}))
	assert.Error(t, p.Validate(Upload{Data: []byte("x"), MimeType: "text/html"}))
	assert.NoError(t, p.Validate(Upload{Data: []byte("x"), MimeType: "image/png"}))
	assert.NoError(t, p.Validate(Upload{Data: []byte("x"), MimeType: "application/pdf"}))
}

func TestRunCommitOrdering(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log, url: "http://files.test/api/files/old-blob.webp", status: entity.MediaStatusCompleted}

	p := newTestPipeline(log, staging, blobs)
	err := p.Run(context.Background(), records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})
	require.NoError(t, err)

	url, status := records.state()
	assert.Equal(t, entity.MediaStatusCompleted, status)
	assert.Contains(t, url, "ent1-")

	// Blob write precedes the record update, and the superseded blob is
	// deleted only after the record points at the new one.
	events := log.all()
	indexOf := func(prefix string) int {
		for i, e := range events {
			if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
				return i
			}
		}
		return -1
	}
	put := indexOf("blob-put")
	update := indexOf("record-update:completed")
	oldDelete := indexOf("blob-delete:old-blob.webp")
	require.NotEqual(t, -1, put)
	require.NotEqual(t, -1, update)
	require.NotEqual(t, -1, oldDelete)
	assert.Less(t, put, update)
	assert.Less(t, update, oldDelete)
}

func TestRunStagingFailure(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log, putErr: errors.New("provider down")}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log, url: "http://files.test/api/files/keep.webp", status: entity.MediaStatusCompleted}

	p := newTestPipeline(log, staging, blobs)
	err := p.Run(context.Background(), records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})
	require.Error(t, err)

	url, status := records.state()
	assert.Equal(t, entity.MediaStatusFailed, status)
	// A failed run never touches the previously committed url.
	assert.Equal(t, "http://files.test/api/files/keep.webp", url)
	assert.Empty(t, blobs.stored)
}

func TestRunTransformFailureCleansStaging(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log, fetchErr: errors.New("bad rendition")}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log}

	p := newTestPipeline(log, staging, blobs)
	err := p.Run(context.Background(), records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})
	require.Error(t, err)

	_, status := records.state()
	assert.Equal(t, entity.MediaStatusFailed, status)
	assert.Len(t, staging.deleted, 1)
}

func TestRunSuccessCleansStaging(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log}

	p := newTestPipeline(log, staging, blobs)
	err := p.Run(context.Background(), records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})
	require.NoError(t, err)

	assert.Len(t, staging.deleted, 1)
}

func TestRunFinalizeFailureLeavesOrphanBlob(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log, updateErr: errors.New("firestore down")}

	p := newTestPipeline(log, staging, blobs)
	err := p.Run(context.Background(), records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})
	require.Error(t, err)

	// The committed blob stays; there is no compensating delete.
	assert.Len(t, blobs.stored, 1)
	assert.Empty(t, blobs.deleted)
	assert.Len(t, staging.deleted, 1)
}

func TestLaunchRejectedAfterDrainMarksFailed(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log, status: entity.MediaStatusPending}

	runner := task.NewRunner()
	runner.Drain(0)

	p := NewMediaPipelineUseCase(staging, blobs, runner, testConfig())
	p.Launch(records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})

	_, status := records.state()
	assert.Equal(t, entity.MediaStatusFailed, status)
}

func TestConcurrentRunsSameEntity(t *testing.T) {
	log := &eventLog{}
	staging := &fakeStaging{log: log}
	blobs := newFakeBlobs(log)
	records := &fakeRecords{log: log}

	p := newTestPipeline(log, staging, blobs)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Run(context.Background(), records, "ent1", Upload{Data: []byte("img"), MimeType: "image/png"})
		}()
	}
	wg.Wait()

	// Last writer wins; whichever run finished last, the record must be
	// in a terminal state pointing at one of the committed blobs.
	url, status := records.state()
	assert.Equal(t, entity.MediaStatusCompleted, status)
	_, ok := blobs.stored[urlFilename(url)]
	assert.True(t, ok)
}

func urlFilename(url string) string {
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			return url[i+1:]
		}
	}
	return url
}
