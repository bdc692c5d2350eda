package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Client talks to the remote tracking/scheduling worker. Every call carries
// the shared secret as a query parameter.
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
	log     *slog.Logger
}

// New creates a worker client. A nil log gets a no-op logger.
func New(baseURL, secret string, log *slog.Logger) *Client {
	if log == nil {
		log = logger.NewNope()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("secret", c.secret)
	return c.baseURL + path + "?" + params.Encode()
}

// Logs fetches all open-tracking log entries.
func (c *Client) Logs(ctx context.Context) ([]LogEntry, error) {
	var logs []LogEntry
	if err := c.getJSON(ctx, c.endpoint("/api/logs", nil), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Filters fetches the distinct recipients (as tracking tokens) and
// countries the worker has seen.
func (c *Client) Filters(ctx context.Context) (FilterOptions, error) {
	var opts FilterOptions
	if err := c.getJSON(ctx, c.endpoint("/api/filters", nil), &opts); err != nil {
		return FilterOptions{}, err
	}
	return opts, nil
}

// DeleteLogs removes every log entry recorded for one tracking token.
func (c *Client) DeleteLogs(ctx context.Context, trackingID string) error {
	u := c.endpoint("/api/logs", url.Values{"tracking_id": {trackingID}})
	return c.doNoBody(ctx, http.MethodDelete, u)
}

// Scheduled fetches the jobs the worker currently holds.
func (c *Client) Scheduled(ctx context.Context) ([]ScheduledJob, error) {
	var jobs []ScheduledJob
	if err := c.getJSON(ctx, c.endpoint("/api/scheduled", nil), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Cancel deletes one scheduled job by id.
func (c *Client) Cancel(ctx context.Context, jobID string) error {
	u := c.endpoint("/api/scheduled", url.Values{"id": {jobID}})
	return c.doNoBody(ctx, http.MethodDelete, u)
}

// ScheduleRequest is everything the worker needs to deliver a compiled
// email at a future instant on the caller's behalf.
type ScheduleRequest struct {
	Document     *compiler.CompiledDocument
	Recipient    string
	Subject      string
	ScheduledAt  time.Time // absolute UTC instant
	SMTPUsername string
	SMTPPassword string
	SenderName   string
}

// Schedule submits a compiled email for future delivery as a multipart
// form. Attachments are form file parts under "attachments"; inline images
// travel under "inline_images" with their content-id as the filename, so
// the worker can rewrite cid: references at send time. Unreadable files are
// skipped, mirroring the direct-send path.
func (c *Client) Schedule(ctx context.Context, req ScheduleRequest) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := map[string]string{
		"recipient":     req.Recipient,
		"subject":       req.Subject,
		"html_body":     req.Document.HTMLBody,
		"plain_body":    req.Document.PlainBody,
		"scheduled_at":  req.ScheduledAt.UTC().Format(time.RFC3339),
		"smtp_username": req.SMTPUsername,
		"smtp_password": req.SMTPPassword,
		"sender_name":   req.SenderName,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return fmt.Errorf("building schedule form: %w", err)
		}
	}

	for _, path := range req.Document.Attachments {
		c.addFilePart(form, "attachments", path, filepath.Base(path))
	}
	for _, img := range req.Document.InlineImages {
		c.addFilePart(form, "inline_images", img.SourcePath, img.ContentID)
	}

	if err := form.Close(); err != nil {
		return fmt.Errorf("building schedule form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/schedule", nil), &body)
	if err != nil {
		return fmt.Errorf("building schedule request: %w", err)
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrWorkerRejected, resp.StatusCode, strings.TrimSpace(string(text)))
	}
	return nil
}

// addFilePart appends one file to the form with an inferred content type,
// skipping files that cannot be read.
func (c *Client) addFilePart(form *multipart.Writer, field, path, filename string) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Warn("skipping unreadable form part", slog.String("path", path), slog.Any("error", err))
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		c.log.Warn("skipping form part", slog.String("path", path), slog.Any("error", err))
		return
	}
	if _, err := part.Write(data); err != nil {
		c.log.Warn("failed writing form part", slog.String("path", path), slog.Any("error", err))
	}
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrWorkerRejected, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding worker response: %w", err)
	}
	return nil
}

func (c *Client) doNoBody(ctx context.Context, method, u string) error {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrWorkerRejected, resp.StatusCode)
	}
	return nil
}
