package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robocompare/robocompare-backend/internal/http/response"
	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/platform/apierr"
	"github.com/robocompare/robocompare-backend/internal/services"
	"github.com/robocompare/robocompare-backend/internal/types"
)

type ConfigHandler struct {
	log           *logger.Logger
	configService services.ConfigService
}

func NewConfigHandler(log *logger.Logger, configService services.ConfigService) *ConfigHandler {
	return &ConfigHandler{
		log:           log.With("handler", "ConfigHandler"),
		configService: configService,
	}
}

func (h *ConfigHandler) GetConfig(c *gin.Context) {
	category := c.Param("category")
	cfg, err := h.configService.GetConfig(c.Request.Context(), category)
	if err != nil {
		h.log.Error("GetConfig failed", "category", category, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_config_failed", err)
		return
	}
	response.RespondOK(c, cfg)
}

type saveConfigRequest struct {
	SpecGroups []types.SpecGroup `json:"specGroups"`
}

func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	category := c.Param("category")

	var req saveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.configService.SaveConfig(c.Request.Context(), category, req.SpecGroups); err != nil {
		status := http.StatusInternalServerError
		code := "save_config_failed"
		var ae *apierr.Error
		if errors.As(err, &ae) && ae.Status != 0 {
			status = ae.Status
			code = ae.Code
		}
		h.log.Error("SaveConfig failed", "category", category, "error", err)
		response.RespondError(c, status, code, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
