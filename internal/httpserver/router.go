package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aruiz-dev/tasklist/internal/middleware"
)

type Deps struct {
	AuthHandler *AuthHTTP
	TaskHandler *TaskHTTP
	Auth        *middleware.BearerAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the tasklist API"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/token", d.AuthHandler.Token)

	tasks := e.Group("/tasks")
	tasks.Use(d.Auth.RequireAuth)

	tasks.POST("/", d.TaskHandler.CreateTask)
	tasks.GET("/", d.TaskHandler.ListTasks)
	tasks.GET("/:id", d.TaskHandler.GetTask)
	tasks.PUT("/:id", d.TaskHandler.UpdateTask)
	tasks.DELETE("/:id", d.TaskHandler.DeleteTask)
	tasks.PATCH("/:id/complete", d.TaskHandler.CompleteTask)
}
