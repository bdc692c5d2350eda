package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
)

func entry(token, country string, ts time.Time) LogEntry {
	return LogEntry{TrackingID: token, Country: country, Timestamp: ts}
}

func TestAggregate_GroupsAndDecodes(t *testing.T) {
	t.Parallel()

	tokA := compiler.Token("alice@example.com")
	tokB := compiler.Token("bob@example.com")
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	logs := []LogEntry{
		entry(tokA, "Norway", base),
		entry(tokA, "Norway", base.Add(2*time.Hour)),
		entry(tokB, "France", base.Add(time.Hour)),
	}

	summaries := Aggregate(logs, SummaryFilter{})
	require.Len(t, summaries, 2)

	// Most recent activity first: alice's second open.
	require.Equal(t, "alice@example.com", summaries[0].DecodedEmail)
	require.Equal(t, 2, summaries[0].OpenCount)
	require.Equal(t, base.Add(2*time.Hour), summaries[0].LastSeen)
	// Per-recipient logs newest first.
	require.True(t, summaries[0].Logs[0].Timestamp.After(summaries[0].Logs[1].Timestamp))

	require.Equal(t, "bob@example.com", summaries[1].DecodedEmail)
}

func TestAggregate_UndecodableTokenKeptRaw(t *testing.T) {
	t.Parallel()

	logs := []LogEntry{entry("!!not-base64!!", "", time.Now())}
	summaries := Aggregate(logs, SummaryFilter{})
	require.Len(t, summaries, 1)
	require.Equal(t, "!!not-base64!!", summaries[0].DecodedEmail)
}

func TestAggregate_Filters(t *testing.T) {
	t.Parallel()

	tokA := compiler.Token("alice@example.com")
	tokB := compiler.Token("bob@example.com")
	now := time.Now()

	logs := []LogEntry{
		entry(tokA, "Norway", now),
		entry(tokA, "Norway", now.Add(time.Minute)),
		entry(tokB, "France", now),
	}

	require.Len(t, Aggregate(logs, SummaryFilter{Recipient: "alice"}), 1)
	require.Len(t, Aggregate(logs, SummaryFilter{Country: "norway"}), 1)
	require.Len(t, Aggregate(logs, SummaryFilter{MinOpens: 2}), 1)
	require.Empty(t, Aggregate(logs, SummaryFilter{MinOpens: 3}))
}

func TestFilterJobs(t *testing.T) {
	t.Parallel()

	jobs := []ScheduledJob{
		{ID: "1", Recipient: "alice@example.com", Status: StatusPending},
		{ID: "2", Recipient: "bob@example.com", Status: StatusSent},
		{ID: "3", Recipient: "alice@example.org", Status: StatusFailed},
	}

	require.Len(t, FilterJobs(jobs, "alice", ""), 2)
	require.Len(t, FilterJobs(jobs, "", StatusSent), 1)
	require.Len(t, FilterJobs(jobs, "alice", StatusFailed), 1)
	require.Len(t, FilterJobs(jobs, "", ""), 3)
}
