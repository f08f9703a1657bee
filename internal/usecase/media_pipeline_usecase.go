package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/internal/domain/service"
	"porosemi/internal/infrastructure/task"
	"porosemi/pkg/errors"
	"porosemi/pkg/logger"
	"porosemi/pkg/utils"
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// failWriteTimeout bounds the status write for runs that never started.
const failWriteTimeout = 10 * time.Second

// Upload is one validated file payload entering the pipeline.
type Upload struct {
	Data     []byte
	MimeType string
}

// MediaPipelineConfig carries the fixed transform budget constants.
type MediaPipelineConfig struct {
	StagingFolder  string
	MaxUploadBytes int64
	TargetSizeKB   int
	StartQuality   int
	QualityStep    int
	QualityFloor   int
	MaxAttempts    int
}

// MediaPipelineUseCase drives one upload through staging, transform,
// blob commit and record finalization. Each run owns exactly one staged
// object and deletes it on both success and failure paths.
type MediaPipelineUseCase struct {
	staging service.StagingStore
	blobs   service.BlobStore
	runner  *task.Runner
	cfg     MediaPipelineConfig
}

func NewMediaPipelineUseCase(staging service.StagingStore, blobs service.BlobStore, runner *task.Runner, cfg MediaPipelineConfig) *MediaPipelineUseCase {
	return &MediaPipelineUseCase{
		staging: staging,
		blobs:   blobs,
		runner:  runner,
		cfg:     cfg,
	}
}

// Validate rejects an upload before the pipeline starts. Everything
// past this point reports only through the entity's media status.
func (p *MediaPipelineUseCase) Validate(up Upload) error {
	if len(up.Data) == 0 {
		return errors.Validation("File is empty", nil)
	}
	if int64(len(up.Data)) > p.cfg.MaxUploadBytes {
		return errors.Validation("File exceeds maximum upload size", nil)
	}
	if !allowedMimeTypes[up.MimeType] {
		return errors.Validation("File type not supported", nil)
	}
	return nil
}

// Launch starts a detached run for one entity and returns immediately.
// The HTTP response never waits on it; clients poll the entity record.
func (p *MediaPipelineUseCase) Launch(records repository.MediaUpdater, entityID string, up Upload) {
	accepted := p.runner.Go("media-pipeline:"+entityID, func(ctx context.Context) {
		p.Run(ctx, records, entityID, up)
	})
	if !accepted {
		// Shutting down; without a run the record would sit at pending
		// forever, so mark it failed while we still can.
		ctx, cancel := context.WithTimeout(context.Background(), failWriteTimeout)
		defer cancel()
		if err := records.UpdateMedia(ctx, entityID, "", entity.MediaStatusFailed); err != nil {
			logger.Error("Entity %s left pending: %v", entityID, err)
		}
	}
}

// Run executes the full pipeline synchronously. Used directly for small
// assets (tool icons) and by Launch for everything else. The returned
// error is for callers that wait; detached runs only log it.
func (p *MediaPipelineUseCase) Run(ctx context.Context, records repository.MediaUpdater, entityID string, up Upload) error {
	runID := utils.StagingID(entityID)

	// Prior media state, needed to supersede the old blob after commit.
	// A read failure only costs us that cleanup.
	priorURL := ""
	if prior, err := records.GetMedia(ctx, entityID); err != nil {
		logger.Warn("Run %s: could not read prior media state: %v", runID, err)
	} else if prior != nil {
		priorURL = prior.URL
	}

	// Staging.
	staged, err := p.staging.Put(ctx, up.Data, runID, p.cfg.StagingFolder)
	if err != nil {
		logger.Error("Run %s: staging upload failed: %v", runID, err)
		p.errored(ctx, records, entityID, "")
		return err
	}

	// Transforming.
	buf, err := p.transform(ctx, staged.PublicID, up.MimeType)
	if err != nil {
		logger.Error("Run %s: transform failed: %v", runID, err)
		p.errored(ctx, records, entityID, staged.PublicID)
		return err
	}

	// Committing. The blob write strictly precedes the record update so
	// a completed status can never point at a missing object.
	filename := utils.BlobFilename(entityID, "webp")
	if err := p.blobs.Put(ctx, filename, buf, "image/webp"); err != nil {
		logger.Error("Run %s: blob commit failed: %v", runID, err)
		p.errored(ctx, records, entityID, staged.PublicID)
		return err
	}
	url := p.blobs.URL(filename)

	// Finalizing.
	if err := records.UpdateMedia(ctx, entityID, url, entity.MediaStatusCompleted); err != nil {
		// The new blob is committed but unreferenced. No compensating
		// delete and no retry; log the orphan and mark failed.
		logger.Error("Run %s: finalize failed, blob %s is orphaned: %v", runID, filename, err)
		p.errored(ctx, records, entityID, staged.PublicID)
		return err
	}

	// The old blob is superseded only after the record points at the
	// new one; never delete-before-replace.
	if priorURL != "" && priorURL != url {
		if old := utils.FilenameFromURL(priorURL); old != "" {
			if err := p.blobs.Delete(ctx, old); err != nil {
				logger.Warn("Run %s: could not delete superseded blob %s: %v", runID, old, err)
			}
		}
	}

	p.cleanupStaging(ctx, staged.PublicID)
	logger.Info("Run %s: committed %s (%dKB)", runID, filename, len(buf)/1024)
	return nil
}

// transform asks the staging provider for web-optimized renditions,
// walking quality down until the result fits the size budget or the
// quality floor is reached. The last buffer produced wins either way;
// an oversized image beats a failed run. With the default schedule
// (85, 75, 70) the floor binds before the attempt cap; the cap only
// limits runs configured to start higher.
func (p *MediaPipelineUseCase) transform(ctx context.Context, publicID, mimeType string) ([]byte, error) {
	spec := service.TransformSpec{
		Format:  "webp",
		Quality: p.cfg.StartQuality,
	}
	if mimeType == "application/pdf" {
		// Only the first page of a document is kept.
		spec.Page = 1
		spec.MaxWidth = 800
		spec.MaxHeight = 1000
	}

	budget := p.cfg.TargetSizeKB * 1024
	var buf []byte
	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		b, err := p.staging.FetchRendition(ctx, publicID, spec)
		if err != nil {
			return nil, err
		}
		buf = b

		if len(buf) <= budget {
			break
		}

		next := spec.Quality - p.cfg.QualityStep
		if next < p.cfg.QualityFloor {
			if spec.Quality <= p.cfg.QualityFloor {
				break
			}
			next = p.cfg.QualityFloor
		}
		logger.Debug("Rendition of %s still %dKB, lowering quality to %d", publicID, len(buf)/1024, next)
		spec.Quality = next
	}

	return buf, nil
}

// errored is the terminal handler for every failing step: best-effort
// staging cleanup, then mark the record failed without touching its url.
func (p *MediaPipelineUseCase) errored(ctx context.Context, records repository.MediaUpdater, entityID, stagedID string) {
	p.cleanupStaging(ctx, stagedID)

	if err := records.UpdateMedia(ctx, entityID, "", entity.MediaStatusFailed); err != nil {
		// Known gap: the record keeps whatever status it had.
		logger.Error("Entity %s status left stale after failed run: %v", entityID, err)
	}
}

func (p *MediaPipelineUseCase) cleanupStaging(ctx context.Context, stagedID string) {
	if stagedID == "" {
		return
	}
	if err := p.staging.Delete(ctx, stagedID); err != nil {
		logger.Warn("Could not delete staging object %s: %v", stagedID, err)
	}
}
