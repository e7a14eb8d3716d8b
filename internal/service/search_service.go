package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/store"
)

// SearchType selects which entities a search covers.
type SearchType string

// Search types.
const (
	SearchAll   SearchType = "all"
	SearchTasks SearchType = "tasks"
	SearchLists SearchType = "lists"
)

// ParseSearchType maps a query value to a SearchType. An empty value means
// SearchAll; anything unknown is a validation error.
func ParseSearchType(s string) (SearchType, error) {
	switch t := SearchType(s); t {
	case "":
		return SearchAll, nil
	case SearchAll, SearchTasks, SearchLists:
		return t, nil
	default:
		return "", domain.NewValidationError("type", "must be one of all, tasks, lists", nil)
	}
}

// SearchQuery is a validated search request.
type SearchQuery struct {
	Query string
	Type  SearchType
	Page  domain.PageRequest
}

// SearchResult holds one page of matches per section. Sections that were not
// searched are empty and carry no pagination of their own.
type SearchResult struct {
	Tasks          []domain.Task      `json:"tasks"`
	Lists          []domain.TodoList  `json:"lists"`
	Pagination     domain.Pagination  `json:"pagination"`
	TaskPagination *domain.Pagination `json:"task_pagination,omitempty"`
	ListPagination *domain.Pagination `json:"list_pagination,omitempty"`
}

// SearchService runs substring searches across the caller's tasks and lists.
type SearchService interface {
	Search(ctx context.Context, userID uuid.UUID, q SearchQuery) (*SearchResult, error)
}

type searchService struct {
	tasks  store.TaskStore
	lists  store.ListStore
	logger *slog.Logger
}

var _ SearchService = (*searchService)(nil)

// NewSearchService creates a SearchService.
func NewSearchService(tasks store.TaskStore, lists store.ListStore, log *slog.Logger) SearchService {
	if log == nil {
		log = slog.Default()
	}
	return &searchService{
		tasks:  tasks,
		lists:  lists,
		logger: log.With(slog.String("component", "search_service")),
	}
}

// Search paginates each section independently with the same page and limit.
// The combined pagination sums the totals and takes the larger page count.
func (s *searchService) Search(ctx context.Context, userID uuid.UUID, q SearchQuery) (*SearchResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := q.Query
	if strings.TrimSpace(query) == "" {
		return nil, NewServiceError("search", "search", "",
			domain.NewValidationError("q", "must not be empty", ErrEmptyQuery))
	}
	if q.Type == "" {
		q.Type = SearchAll
	}

	result := &SearchResult{Tasks: []domain.Task{}, Lists: []domain.TodoList{}}
	var sections []domain.Pagination

	if q.Type == SearchAll || q.Type == SearchTasks {
		tasks, total, err := s.tasks.Search(ctx, userID, query, q.Page)
		if err != nil {
			logFailure(log, "task search failed", err)
			return nil, NewServiceError("search", "search", "tasks", err)
		}
		if tasks != nil {
			result.Tasks = tasks
		}
		p := domain.NewPagination(q.Page, total)
		result.TaskPagination = &p
		sections = append(sections, p)
	}

	if q.Type == SearchAll || q.Type == SearchLists {
		lists, total, err := s.lists.List(ctx, userID, store.ListFilter{Search: query, Page: q.Page})
		if err != nil {
			logFailure(log, "list search failed", err)
			return nil, NewServiceError("search", "search", "lists", err)
		}
		if lists != nil {
			result.Lists = lists
		}
		p := domain.NewPagination(q.Page, total)
		result.ListPagination = &p
		sections = append(sections, p)
	}

	result.Pagination = domain.CombinePagination(q.Page, sections...)
	return result, nil
}
