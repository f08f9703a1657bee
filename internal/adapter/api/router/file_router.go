package router

import (
	"porosemi/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo) {
	fileHandler := handler.GetFileHandler()

	// Media URLs written by the pipeline resolve here.
	e.GET("/api/files/:filename", fileHandler.Serve)
}
