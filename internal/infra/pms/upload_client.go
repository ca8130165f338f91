// Package pms integrates with the property-management-system backend that
// owns media storage. Image uploads from the admin surface are relayed there.
package pms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"innkeep/config"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/service"
	"innkeep/internal/infra/metrics"
)

const defaultTimeout = 30 * time.Second

// uploadClient implements service.UploadService against the PMS HTTP API.
type uploadClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	metrics *metrics.HTTPMetrics
}

// NewUploadClient is the constructor for the PMS upload proxy. Without a
// configured base URL the client is inert: the service starts normally and
// every upload fails with the bad-gateway domain error, the same way an
// unreachable PMS would.
func NewUploadClient(cfg *config.Config, logger *slog.Logger, m *metrics.HTTPMetrics) (service.UploadService, error) {
	if cfg.PMS == nil || cfg.PMS.BaseURL == "" {
		return &uploadClient{logger: logger}, nil
	}

	timeout := defaultTimeout
	if cfg.PMS.Timeout > 0 {
		timeout = cfg.PMS.Timeout
	}

	return &uploadClient{
		baseURL: cfg.PMS.BaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: m,
	}, nil
}

// UploadImage relays one image file to the PMS. Any failure surfaces as the
// bad-gateway domain error so the handler maps it to 502 uniformly.
func (c *uploadClient) UploadImage(ctx context.Context, filename, contentType string, size int64, content io.Reader) (*service.UploadResult, error) {
	if c.baseURL == "" {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "pms upload rejected, no backend configured",
				slog.String("filename", filename))
		}

		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("image upload failed")
	}

	start := time.Now()
	result, err := c.upload(ctx, filename, contentType, content)
	if c.metrics != nil {
		c.metrics.ObserveUpstream("pms", time.Since(start), err)
	}
	if err != nil {
		if c.logger != nil {
			c.logger.ErrorContext(ctx, "pms upload failed",
				slog.String("filename", filename),
				slog.Int64("size", size),
				slog.String("error", err.Error()),
			)
		}

		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("image upload failed")
	}

	if result.Size == 0 {
		result.Size = size
	}
	if result.Filename == "" {
		result.Filename = filename
	}

	return result, nil
}

func (c *uploadClient) upload(ctx context.Context, filename, contentType string, content io.Reader) (*service.UploadResult, error) {
	// Stream the multipart body through a pipe so large files are never
	// buffered whole in memory.
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := createImagePart(writer, filename, contentType)
		if err != nil {
			pw.CloseWithError(err)

			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)

			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads/image", pr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "upload request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("upload returned status %d", resp.StatusCode)
	}

	var result service.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode upload response")
	}
	if result.URL == "" {
		return nil, errors.New("upload response missing url")
	}

	return &result, nil
}

func createImagePart(writer *multipart.Writer, filename, contentType string) (io.Writer, error) {
	if contentType == "" {
		return writer.CreateFormFile("file", filename)
	}

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}

	return writer.CreatePart(header)
}
