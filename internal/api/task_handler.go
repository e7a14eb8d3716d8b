package api

import (
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
)

// TaskHandler handles task endpoints, including the bulk variants.
type TaskHandler struct {
	taskService service.TaskService
	pagination  config.PaginationConfig
	errors      *ErrorHandler
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	taskService service.TaskService,
	pagination config.PaginationConfig,
	errs *ErrorHandler,
) *TaskHandler {
	return &TaskHandler{taskService: taskService, pagination: pagination, errors: errs}
}

// ListTasks handles GET /v1/lists/{listID}/tasks.
//
// @Summary List tasks in a list
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param completed query bool false "Completion filter"
// @Param priority query string false "Priority filter" Enums(low, medium, high, urgent)
// @Param category_id query string false "Category filter"
// @Param search query string false "Title substring"
// @Param sort_by query string false "Sort field" Enums(created_at, updated_at, due_date, priority, title)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} domain.Page[domain.Task]
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/lists/{listID}/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, listID, err := userAndPathID(r, ListIDParam, store.ErrListNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	filter, err := parseTaskFilter(r.URL.Query(), h.pagination)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	page, err := h.taskService.List(r.Context(), userID, listID, filter)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// CreateTask handles POST /v1/lists/{listID}/tasks.
//
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List ID"
// @Param payload body CreateTaskRequest true "Task payload"
// @Success 201 {object} domain.Task
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/lists/{listID}/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, listID, err := userAndPathID(r, ListIDParam, store.ErrListNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, listID, req.ToDraft())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// GetTask handles GET /v1/tasks/{taskID}.
//
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Success 200 {object} domain.Task
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/{taskID} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := userAndPathID(r, TaskIDParam, store.ErrTaskNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /v1/tasks/{taskID}.
//
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Param payload body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} domain.Task
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/{taskID} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := userAndPathID(r, TaskIDParam, store.ErrTaskNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, req.ToPatch())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// ToggleTask handles PATCH /v1/tasks/{taskID}/toggle.
//
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Success 200 {object} domain.Task
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/{taskID}/toggle [patch]
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := userAndPathID(r, TaskIDParam, store.ErrTaskNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	task, err := h.taskService.Toggle(r.Context(), userID, taskID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /v1/tasks/{taskID}.
//
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param taskID path string true "Task ID"
// @Success 204
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/{taskID} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := userAndPathID(r, TaskIDParam, store.ErrTaskNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}

// BulkCreateTasks handles POST /v1/tasks/bulk.
//
// @Summary Create many tasks in one list
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body BulkCreateTasksRequest true "List and tasks"
// @Success 201 {array} domain.Task
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/bulk [post]
func (h *TaskHandler) BulkCreateTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req BulkCreateTasksRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	tasks, err := h.taskService.BulkCreate(r.Context(), userID, req.ListID, req.ToDrafts())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, nonNilTasks(tasks))
}

// BulkUpdateTasks handles PATCH /v1/tasks/bulk/update.
//
// @Summary Apply one update to many tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body BulkUpdateTasksRequest true "Task ids and update"
// @Success 200 {array} domain.Task
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/bulk/update [patch]
func (h *TaskHandler) BulkUpdateTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req BulkUpdateTasksRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	tasks, err := h.taskService.BulkUpdate(r.Context(), userID, req.TaskIDs, req.Updates.ToPatch())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nonNilTasks(tasks))
}

// BulkDeleteTasks handles DELETE /v1/tasks/bulk/delete.
//
// @Summary Delete many tasks
// @Tags tasks
// @Accept json
// @Security BearerAuth
// @Param payload body BulkDeleteTasksRequest true "Task ids"
// @Success 204
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/tasks/bulk/delete [delete]
func (h *TaskHandler) BulkDeleteTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req BulkDeleteTasksRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.taskService.BulkDelete(r.Context(), userID, req.TaskIDs); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
