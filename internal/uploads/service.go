package uploads

import (
	"bytes"
	"context"
	"io"
	"newsroom/pkg/logger"
	"newsroom/pkg/metrics"
	"newsroom/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Service runs uploads in the background and records their progress in a Tracker.
type Service struct {
	uploader *Uploader
	tracker  *Tracker
	timeout  time.Duration
}

func NewService(uploader *Uploader, tracker *Tracker, timeout time.Duration) *Service {
	return &Service{uploader: uploader, tracker: tracker, timeout: timeout}
}

func (s *Service) Tracker() *Tracker { return s.tracker }

// Start validates f, buffers it and uploads it in the background. The upload
// outlives the request that started it; its own timeout bounds it. The
// returned status is pending.
func (s *Service) Start(ctx context.Context, f File) (Status, error) {
	if _, err := s.uploader.Check(f); err != nil {
		return Status{}, err
	}

	limit := s.uploader.maxBytes
	if limit <= 0 {
		limit = 32 << 20
	}
	buf, err := io.ReadAll(io.LimitReader(f.Body, limit+1))
	if err != nil {
		return Status{}, serrors.Wrap(serrors.ErrBadRequest, err, "Could not read the image")
	}
	if int64(len(buf)) > limit {
		return Status{}, serrors.With(serrors.ErrBadRequest, "Image is larger than %d MB", limit>>20)
	}
	f.Body = bytes.NewReader(buf)
	f.Size = int64(len(buf))

	status := s.tracker.Create(f.Name)

	bgCtx := logger.WithFields(context.WithoutCancel(ctx), zap.String("uploadID", status.ID))
	go s.run(bgCtx, status.ID, f)

	return status, nil
}

func (s *Service) run(ctx context.Context, id string, f File) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	url, err := s.upload(ctx, f, func(pct int) { s.tracker.Progress(id, pct) })
	if err != nil {
		s.tracker.Fail(id, serrors.MessageOf(err, failedMessage))

		return
	}
	s.tracker.Complete(id, url)
}

// Upload sends f within the caller's request and returns its URL. The
// editor uses it for thumbnails, which are submitted with the article form.
func (s *Service) Upload(ctx context.Context, f File) (string, error) {
	return s.upload(ctx, f, nil)
}

func (s *Service) upload(ctx context.Context, f File, progress ProgressFunc) (string, error) {
	start := time.Now()
	url, err := s.uploader.Upload(ctx, f, progress)
	metrics.UploadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(string(StateFailed)).Inc()
		logger.Warn(ctx, "image upload failed", zap.String("file", f.Name), zap.Error(err))

		return "", err
	}

	metrics.UploadsTotal.WithLabelValues(string(StateDone)).Inc()
	logger.Debug(ctx, "image uploaded", zap.String("url", url))

	return url, nil
}
