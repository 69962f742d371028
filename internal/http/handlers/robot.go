package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robocompare/robocompare-backend/internal/http/response"
	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/platform/apierr"
	"github.com/robocompare/robocompare-backend/internal/services"
)

type RobotHandler struct {
	log          *logger.Logger
	robotService services.RobotService
}

func NewRobotHandler(log *logger.Logger, robotService services.RobotService) *RobotHandler {
	return &RobotHandler{
		log:          log.With("handler", "RobotHandler"),
		robotService: robotService,
	}
}

func (h *RobotHandler) GetRobots(c *gin.Context) {
	category := c.Param("category")
	data, err := h.robotService.GetRobots(c.Request.Context(), category)
	if err != nil {
		status := http.StatusInternalServerError
		code := "load_robots_failed"
		var ae *apierr.Error
		if errors.As(err, &ae) && ae.Status != 0 {
			status = ae.Status
			code = ae.Code
		}
		if status >= 500 {
			h.log.Error("GetRobots failed", "category", category, "error", err)
		}
		response.RespondError(c, status, code, err)
		return
	}
	response.RespondOK(c, data)
}
