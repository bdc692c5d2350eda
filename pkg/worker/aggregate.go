package worker

import (
	"sort"
	"strings"
	"time"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
)

// RecipientSummary aggregates every open recorded for one tracking token.
type RecipientSummary struct {
	TrackingID   string
	DecodedEmail string
	Country      string
	OpenCount    int
	LastSeen     time.Time
	Logs         []LogEntry // newest first
}

// SummaryFilter narrows the aggregated view. Zero value matches everything.
type SummaryFilter struct {
	Recipient string // substring of the decoded address
	Country   string // substring, case-insensitive
	MinOpens  int
}

// Aggregate groups log entries by tracking token and decodes each token
// back to the recipient address it encodes. Tokens that fail to decode keep
// the raw token as their display address rather than being dropped.
// Summaries come back ordered by most recent activity.
func Aggregate(logs []LogEntry, filter SummaryFilter) []RecipientSummary {
	groups := make(map[string][]LogEntry)
	for _, entry := range logs {
		groups[entry.TrackingID] = append(groups[entry.TrackingID], entry)
	}

	var summaries []RecipientSummary
	for id, entries := range groups {
		decoded, err := compiler.DecodeToken(id)
		if err != nil {
			decoded = id
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		})

		if len(entries) < filter.MinOpens {
			continue
		}
		if filter.Recipient != "" && !strings.Contains(decoded, filter.Recipient) {
			continue
		}
		country := entries[0].Country
		if filter.Country != "" && !strings.Contains(strings.ToLower(country), strings.ToLower(filter.Country)) {
			continue
		}

		summaries = append(summaries, RecipientSummary{
			TrackingID:   id,
			DecodedEmail: decoded,
			Country:      country,
			OpenCount:    len(entries),
			LastSeen:     entries[0].Timestamp,
			Logs:         entries,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastSeen.After(summaries[j].LastSeen)
	})
	return summaries
}

// FilterJobs narrows scheduled jobs by recipient substring and status.
// An empty status matches every status.
func FilterJobs(jobs []ScheduledJob, recipient string, status JobStatus) []ScheduledJob {
	var out []ScheduledJob
	for _, job := range jobs {
		if recipient != "" && !strings.Contains(job.Recipient, recipient) {
			continue
		}
		if status != "" && job.Status != status {
			continue
		}
		out = append(out, job)
	}
	return out
}
