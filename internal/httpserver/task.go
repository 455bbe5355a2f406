package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aruiz-dev/tasklist/internal/logging"
	"github.com/aruiz-dev/tasklist/internal/middleware"
	"github.com/aruiz-dev/tasklist/internal/models"
	"github.com/aruiz-dev/tasklist/internal/service"
	"github.com/aruiz-dev/tasklist/internal/transport"
	"github.com/aruiz-dev/tasklist/internal/util"
)

type TaskHTTP struct {
	Svc *service.TaskService
}

func currentUser(c echo.Context) (*models.User, error) {
	u, ok := c.Get(middleware.UserKey).(*models.User)
	if !ok || u == nil {
		return nil, errors.New("unauthorized")
	}
	return u, nil
}

// taskID parses the :id param. An unparseable id maps to the same not-found
// error as an absent or foreign task, so nothing about existence leaks.
func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func notFound() error {
	return echo.NewHTTPError(http.StatusNotFound, "task not found")
}

func (h *TaskHTTP) CreateTask(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_create")

	user, err := currentUser(c)
	if err != nil {
		l.Error("task_create_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.TaskRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("task_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	task, err := h.Svc.Create(ctx, user.ID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("task_create_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("task_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create task")
	}

	l.Info("task_create_success", "task_id", task.ID)
	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHTTP) ListTasks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_list")

	user, err := currentUser(c)
	if err != nil {
		l.Error("task_list_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	offset := util.ParseIntDefault(c.QueryParam("offset"), 0)
	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit)
	offset, limit = util.Window(offset, limit)

	tasks, err := h.Svc.List(ctx, user.ID, offset, limit)
	if err != nil {
		l.Error("task_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHTTP) GetTask(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_get")

	user, err := currentUser(c)
	if err != nil {
		l.Error("task_get_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := taskID(c)
	if err != nil {
		l.Warn("task_get_error", "status", 404, "reason", "bad id", "error", err)
		return notFound()
	}

	task, err := h.Svc.Get(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("task_get_error", "status", 404, "task_id", id)
			return notFound()
		}
		l.Error("task_get_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHTTP) UpdateTask(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_update")

	user, err := currentUser(c)
	if err != nil {
		l.Error("task_update_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := taskID(c)
	if err != nil {
		l.Warn("task_update_error", "status", 404, "reason", "bad id", "error", err)
		return notFound()
	}

	var req transport.TaskRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("task_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	task, err := h.Svc.Update(ctx, id, user.ID, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("task_update_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("task_update_error", "status", 404, "task_id", id)
			return notFound()
		default:
			l.Error("task_update_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update task")
		}
	}

	l.Info("task_update_success", "task_id", task.ID)
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHTTP) DeleteTask(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_delete")

	user, err := currentUser(c)
	if err != nil {
		l.Error("task_delete_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := taskID(c)
	if err != nil {
		l.Warn("task_delete_error", "status", 404, "reason", "bad id", "error", err)
		return notFound()
	}

	if err := h.Svc.Delete(ctx, id, user.ID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("task_delete_error", "status", 404, "task_id", id)
			return notFound()
		}
		l.Error("task_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete task")
	}

	l.Info("task_delete_success", "task_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *TaskHTTP) CompleteTask(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_complete")

	user, err := currentUser(c)
	if err != nil {
		l.Error("task_complete_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := taskID(c)
	if err != nil {
		l.Warn("task_complete_error", "status", 404, "reason", "bad id", "error", err)
		return notFound()
	}

	task, err := h.Svc.Complete(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("task_complete_error", "status", 404, "task_id", id)
			return notFound()
		}
		l.Error("task_complete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot complete task")
	}

	l.Info("task_complete_success", "task_id", task.ID)
	return c.JSON(http.StatusOK, task)
}
