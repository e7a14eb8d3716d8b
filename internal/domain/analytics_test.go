package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	tests := map[string]Period{
		"":        PeriodMonth,
		"week":    PeriodWeek,
		"month":   PeriodMonth,
		"year":    PeriodYear,
		"all":     PeriodAll,
		"decade":  PeriodAll,
		"WEEK":    PeriodAll,
		"fortnte": PeriodAll,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParsePeriod(in), "input %q", in)
	}
}

func TestPeriodSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	week := PeriodWeek.Since(now)
	require.NotNil(t, week)
	assert.Equal(t, now.AddDate(0, 0, -7), *week)

	month := PeriodMonth.Since(now)
	require.NotNil(t, month)
	assert.Equal(t, now.AddDate(0, 0, -30), *month)

	year := PeriodYear.Since(now)
	require.NotNil(t, year)
	assert.Equal(t, now.AddDate(0, 0, -365), *year)

	assert.Nil(t, PeriodAll.Since(now))
}

func TestCompletionRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, CompletionRate(0, 0))
	assert.Equal(t, 50.0, CompletionRate(1, 2))
	assert.Equal(t, 33.33, CompletionRate(1, 3))
	assert.Equal(t, 66.67, CompletionRate(2, 3))
	assert.Equal(t, 100.0, CompletionRate(4, 4))
}

func TestPriorityCounts(t *testing.T) {
	t.Parallel()

	got := PriorityCounts(map[Priority]int{PriorityLow: 1, PriorityHigh: 1, "bogus": 9})
	assert.Equal(t, map[Priority]int{
		PriorityLow:    1,
		PriorityMedium: 0,
		PriorityHigh:   1,
		PriorityUrgent: 0,
	}, got)
}

func TestNewActivityDescriptions(t *testing.T) {
	t.Parallel()

	at := time.Now()
	assert.Equal(t, "Created task: Milk", NewActivity(ActivityTaskCreated, uuid.New(), "Milk", at).Description)
	assert.Equal(t, "Completed task: Eggs", NewActivity(ActivityTaskCompleted, uuid.New(), "Eggs", at).Description)
	assert.Equal(t, "Created list: Groceries", NewActivity(ActivityListCreated, uuid.New(), "Groceries", at).Description)
}

func TestMergeActivity(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pool := func(kind ActivityKind, offsets ...int) []Activity {
		out := make([]Activity, 0, len(offsets))
		for _, off := range offsets {
			out = append(out, NewActivity(kind, uuid.New(), "x", base.Add(time.Duration(off)*time.Minute)))
		}
		return out
	}

	created := pool(ActivityTaskCreated, 50, 40, 30, 20, 10)
	completed := pool(ActivityTaskCompleted, 55, 45, 35, 25, 15)
	lists := pool(ActivityListCreated, 60, 5, 4, 3, 2)

	merged := MergeActivity(created, completed, lists)
	require.Len(t, merged, ActivityFeedSize)

	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Timestamp.After(merged[i-1].Timestamp), "feed must be newest first")
	}
	assert.Equal(t, ActivityListCreated, merged[0].Type)
	assert.Equal(t, base.Add(15*time.Minute), merged[len(merged)-1].Timestamp)

	assert.Empty(t, MergeActivity())

	tied := MergeActivity(pool(ActivityTaskCreated, 1), pool(ActivityListCreated, 1))
	require.Len(t, tied, 2)
	assert.Equal(t, ActivityTaskCreated, tied[0].Type, "ties keep pool order")
}
