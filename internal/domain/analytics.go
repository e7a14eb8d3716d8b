package domain

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Period selects the analytics lookback window.
type Period string

// Supported periods.
const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// DefaultPeriod applies when the client names none.
const DefaultPeriod = PeriodMonth

// ParsePeriod maps a query value to a Period. An empty value yields
// DefaultPeriod and an unrecognized one yields PeriodAll.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case "":
		return DefaultPeriod
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return p
	default:
		return PeriodAll
	}
}

// Since returns the start of the window ending at now, or nil when unbounded.
func (p Period) Since(now time.Time) *time.Time {
	var days int
	switch p {
	case PeriodWeek:
		days = 7
	case PeriodMonth:
		days = 30
	case PeriodYear:
		days = 365
	default:
		return nil
	}
	since := now.AddDate(0, 0, -days)
	return &since
}

// ActivityKind tags a recent-activity event.
type ActivityKind string

// Activity kinds.
const (
	ActivityTaskCreated   ActivityKind = "task_created"
	ActivityTaskCompleted ActivityKind = "task_completed"
	ActivityListCreated   ActivityKind = "list_created"
)

const (
	// ActivityPoolSize is how many events each source contributes.
	ActivityPoolSize = 5
	// ActivityFeedSize caps the merged feed.
	ActivityFeedSize = 10
)

// Activity is a single entry in the recent-activity feed.
type Activity struct {
	Type        ActivityKind `json:"type"`
	EntityID    uuid.UUID    `json:"entity_id"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

// NewActivity builds an event with the description derived from kind and name.
func NewActivity(kind ActivityKind, entityID uuid.UUID, name string, at time.Time) Activity {
	var prefix string
	switch kind {
	case ActivityTaskCreated:
		prefix = "Created task: "
	case ActivityTaskCompleted:
		prefix = "Completed task: "
	case ActivityListCreated:
		prefix = "Created list: "
	}
	return Activity{
		Type:        kind,
		EntityID:    entityID,
		Description: prefix + name,
		Timestamp:   at,
	}
}

// MergeActivity concatenates the pools in order, sorts newest first and keeps
// at most ActivityFeedSize events. Ties keep pool order.
func MergeActivity(pools ...[]Activity) []Activity {
	merged := make([]Activity, 0, len(pools)*ActivityPoolSize)
	for _, pool := range pools {
		merged = append(merged, pool...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	if len(merged) > ActivityFeedSize {
		merged = merged[:ActivityFeedSize]
	}
	return merged
}

// CompletionRate is completed/total as a percentage rounded to two decimals,
// or 0 when total is 0.
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

// CategoryCount is the number of tasks carrying one category.
type CategoryCount struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Count        int       `json:"count"`
}

// PriorityCounts returns counts for every known priority, zero-filling those
// absent from counts and dropping unknown keys.
func PriorityCounts(counts map[Priority]int) map[Priority]int {
	out := make(map[Priority]int, len(Priorities))
	for _, p := range Priorities {
		out[p] = counts[p]
	}
	return out
}

// Analytics is the aggregated usage summary for one user.
type Analytics struct {
	Period          Period           `json:"period"`
	Since           *time.Time       `json:"since"`
	TotalTasks      int              `json:"total_tasks"`
	CompletedTasks  int              `json:"completed_tasks"`
	CompletionRate  float64          `json:"completion_rate"`
	TotalLists      int              `json:"total_lists"`
	TasksByPriority map[Priority]int `json:"tasks_by_priority"`
	TasksByCategory []CategoryCount  `json:"tasks_by_category"`
	RecentActivity  []Activity       `json:"recent_activity"`
}
