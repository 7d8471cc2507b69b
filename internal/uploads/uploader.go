// Package uploads sends editor images to storage through backend-issued
// presigned URLs and tracks their progress so the editor can show
// placeholders until the final URL is known.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"newsroom/pkg/newsapi"
	"newsroom/pkg/serrors"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	// DefaultExtension is used for files whose name carries no extension.
	DefaultExtension = "jpg"

	failedMessage = "Failed to upload image. Please try again."
	sniffBytes    = 3072
)

// File is an image to upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProgressFunc receives the transferred share of a file in percent, 0 to 100.
type ProgressFunc func(percent int)

type Options struct {
	AllowedExtensions []string
	MaxBytes          int64
	// HTTPClient performs the storage PUT. It must not add backend credentials.
	HTTPClient *http.Client
}

type Uploader struct {
	files    newsapi.FileClient
	http     *http.Client
	allowed  map[string]bool
	maxBytes int64
}

func NewUploader(files newsapi.FileClient, opts Options) *Uploader {
	allowed := make(map[string]bool, len(opts.AllowedExtensions))
	for _, ext := range opts.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Uploader{files: files, http: httpClient, allowed: allowed, maxBytes: opts.MaxBytes}
}

// Extension returns the lower-cased extension of fileName without the dot,
// or DefaultExtension when there is none.
func Extension(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if ext == "" {
		return DefaultExtension
	}

	return ext
}

// Check validates the name and size of f before anything is sent.
func (u *Uploader) Check(f File) (string, error) {
	ext := Extension(f.Name)
	if len(u.allowed) > 0 && !u.allowed[ext] {
		return "", serrors.With(serrors.ErrBadRequest, "Files of type .%s are not allowed", ext)
	}
	if u.maxBytes > 0 && f.Size > u.maxBytes {
		return "", serrors.With(serrors.ErrBadRequest, "Image is larger than %d MB", u.maxBytes>>20)
	}

	return ext, nil
}

// Upload asks the backend for a presigned URL and PUTs the file there. It
// returns the public URL of the stored file, which is the presigned URL
// without its query string.
func (u *Uploader) Upload(ctx context.Context, f File, progress ProgressFunc) (string, error) {
	if progress == nil {
		progress = func(int) {}
	}

	ext, err := u.Check(f)
	if err != nil {
		return "", err
	}

	body, contentType, err := sniff(f, ext)
	if err != nil {
		return "", err
	}

	presigned, err := u.files.PresignedURL(ctx, ext)
	if err != nil {
		return "", fmt.Errorf("could not get presigned url: %w", err)
	}

	progress(0)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presigned.URL,
		&progressReader{r: body, total: f.Size, report: progress})
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, failedMessage)
	}
	req.ContentLength = f.Size
	req.Header.Set("Content-Type", contentType)

	resp, err := u.http.Do(req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, failedMessage)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", serrors.With(storageKind(resp.StatusCode), "%s", failedMessage)
	}
	progress(100)

	return StripQuery(presigned.URL)
}

// storageKind classifies a failed storage PUT. Only a refused signature is
// told apart; the storage never speaks for the visitor's backend session.
func storageKind(status int) serrors.Kind {
	if status == http.StatusForbidden {
		return serrors.ErrForbidden
	}

	return serrors.ErrUnavailable
}

// sniff checks that the file content is an image and settles its content type.
func sniff(f File, ext string) (io.Reader, string, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(f.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "Could not read the image")
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, "", serrors.With(serrors.ErrBadRequest, "The file is not an image")
	}

	contentType := f.ContentType
	if !strings.HasPrefix(contentType, "image/") {
		contentType = mime.TypeByExtension("." + ext)
	}
	if contentType == "" {
		contentType = detected.String()
	}

	return io.MultiReader(bytes.NewReader(head), f.Body), contentType, nil
}

// StripQuery drops the query string and fragment of a presigned URL.
func StripQuery(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, failedMessage)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""

	return u.String(), nil
}

// progressReader reports the share of total read so far, only when the
// percentage changes.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.total > 0 {
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.last {
			p.last = pct
			p.report(pct)
		}
	}

	return n, err
}
