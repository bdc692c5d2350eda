package worker

import "time"

// JobStatus is the lifecycle state of a scheduled delivery job.
type JobStatus string

const (
	StatusPending JobStatus = "Pending"
	StatusSent    JobStatus = "Sent"
	StatusFailed  JobStatus = "Failed"
)

// LogEntry is one open-tracking event recorded by the worker's pixel
// endpoint.
type LogEntry struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"tracking_id"`
	Timestamp  time.Time `json:"timestamp"`
	IP         string    `json:"ip"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	UserAgent  string    `json:"user_agent"`
	Timezone   string    `json:"timezone"`
}

// FilterOptions lists the distinct values the worker has seen, for building
// filter UIs without scanning every log entry client-side.
type FilterOptions struct {
	Recipients []string `json:"recipients"` // tracking tokens
	Countries  []string `json:"countries"`
}

// JobAttachment is an attachment stored alongside a scheduled job.
type JobAttachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

// ScheduledJob is one delivery the worker holds for a future instant.
type ScheduledJob struct {
	ID                string          `json:"id"`
	Recipient         string          `json:"recipient"`
	Subject           string          `json:"subject"`
	Body              string          `json:"body"`
	ScheduledAt       time.Time       `json:"scheduled_at"`
	RecipientTimezone string          `json:"recipient_timezone"`
	Status            JobStatus       `json:"status"`
	Attachments       []JobAttachment `json:"attachments"`
}
