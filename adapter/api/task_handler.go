package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/tasks/application/commands"
	"github.com/taskdeck/taskdeck/internal/tasks/application/queries"
	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// TaskHandler exposes task CRUD and the query-engine views.
type TaskHandler struct {
	list       *queries.ListTasksHandler
	calendar   *queries.CalendarHandler
	create     *commands.CreateTaskHandler
	update     *commands.UpdateTaskHandler
	completion *commands.SetCompletionHandler
	remove     *commands.DeleteTaskHandler
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	list *queries.ListTasksHandler,
	calendar *queries.CalendarHandler,
	create *commands.CreateTaskHandler,
	update *commands.UpdateTaskHandler,
	completion *commands.SetCompletionHandler,
	remove *commands.DeleteTaskHandler,
) *TaskHandler {
	return &TaskHandler{
		list:       list,
		calendar:   calendar,
		create:     create,
		update:     update,
		completion: completion,
		remove:     remove,
	}
}

// List handles GET /api/v1/tasks. The filter spec comes from the query
// string: category, status, search, date (YYYY-MM-DD, local time).
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	spec := queries.FilterSpec{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.ParseInLocation(queries.DayKeyLayout, raw, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, use YYYY-MM-DD")
			return
		}
		spec.Date = &date
	}

	tasks, err := h.list.Handle(r.Context(), queries.ListTasksQuery{OwnerID: ownerID, Spec: spec})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// Calendar handles GET /api/v1/tasks/calendar. An optional date
// parameter selects a day whose tasks are listed alongside the buckets.
func (h *TaskHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	query := queries.CalendarQuery{OwnerID: ownerID}
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.ParseInLocation(queries.DayKeyLayout, raw, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, use YYYY-MM-DD")
			return
		}
		query.SelectedDate = &date
	}

	view, err := h.calendar.Handle(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build calendar")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
}

// Create handles POST /api/v1/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	dueDate, ok := queries.ParseDueDate(req.DueDate)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid dueDate, use ISO-8601")
		return
	}

	result, err := h.create.Handle(r.Context(), commands.CreateTaskCommand{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		DueDate:     dueDate,
	})
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) || errors.Is(err, task.ErrZeroDueDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": result.TaskID.String()})
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	DueDate     *string `json:"dueDate"`
	Completed   *bool   `json:"completed"`
}

// Update handles PUT /api/v1/tasks/{id}. Absent fields are unchanged;
// the completed flag routes through the completion command.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cmd := commands.UpdateTaskCommand{
		TaskID:      taskID,
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	if req.DueDate != nil {
		dueDate, ok := queries.ParseDueDate(*req.DueDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid dueDate, use ISO-8601")
			return
		}
		cmd.DueDate = &dueDate
	}

	if err := h.update.Handle(r.Context(), cmd); err != nil {
		h.writeTaskError(w, err)
		return
	}

	if req.Completed != nil {
		err := h.completion.Handle(r.Context(), commands.SetCompletionCommand{
			TaskID:    taskID,
			OwnerID:   ownerID,
			Completed: *req.Completed,
		})
		if err != nil {
			h.writeTaskError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": taskID.String()})
}

// Delete handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	err = h.remove.Handle(r.Context(), commands.DeleteTaskCommand{TaskID: taskID, OwnerID: ownerID})
	if err != nil {
		h.writeTaskError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		writeError(w, http.StatusNotFound, "task not found")
	case errors.Is(err, commands.ErrNotOwner):
		writeError(w, http.StatusForbidden, "task belongs to another user")
	case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrZeroDueDate):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "task operation failed")
	}
}
