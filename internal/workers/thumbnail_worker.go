package workers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/disintegration/imaging"

	"filehub-api/internal/queue"
	"filehub-api/internal/services"
)

const dequeueTimeout = 2 * time.Second

// ThumbnailSource is the consumer side of the thumbnail queue.
type ThumbnailSource interface {
	DequeueThumbnail(timeout time.Duration) (*queue.ThumbnailJob, bool, error)
}

// ThumbnailWorker consumes thumbnail jobs and writes the resized
// variants of an image beside its original blob. A job failure is
// logged and the job dropped; there is no retry.
type ThumbnailWorker struct {
	jobs  ThumbnailSource
	files *services.FileService
	blobs *services.BlobService
	sizes []int
}

func NewThumbnailWorker(jobs ThumbnailSource, files *services.FileService, blobs *services.BlobService, sizes []int) *ThumbnailWorker {
	return &ThumbnailWorker{jobs: jobs, files: files, blobs: blobs, sizes: sizes}
}

// Run processes jobs until ctx is cancelled. The dequeue timeout bounds
// how long cancellation can go unnoticed.
func (w *ThumbnailWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, found, err := w.jobs.DequeueThumbnail(dequeueTimeout)
		if err != nil {
			log.Printf("thumbnail worker: dequeue failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if !found {
			continue
		}

		if err := w.Process(job); err != nil {
			log.Printf("thumbnail worker: job for file %s dropped: %v", job.FileID, err)
		}
	}
}

// Process generates every configured variant for the job's image.
// Variants are written one by one, so a failure can leave earlier
// sizes in place; re-running the job overwrites them.
func (w *ThumbnailWorker) Process(job *queue.ThumbnailJob) error {
	file, err := w.files.GetForOwner(job.UserID, job.FileID.String())
	if err != nil {
		return fmt.Errorf("file not found")
	}

	data, err := w.blobs.Read(file.LocalPath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	format, err := imaging.FormatFromFilename(file.Name)
	if err != nil {
		format = imaging.PNG
	}

	for _, size := range w.sizes {
		thumb := imaging.Resize(img, size, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, format); err != nil {
			return fmt.Errorf("encode %d variant: %w", size, err)
		}
		if err := w.blobs.WriteVariant(file.LocalPath, size, buf.Bytes()); err != nil {
			return fmt.Errorf("write %d variant: %w", size, err)
		}
		log.Printf("thumbnail worker: created %d variant for file %s", size, file.ID)
	}

	return nil
}
