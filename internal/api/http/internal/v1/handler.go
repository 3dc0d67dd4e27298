package v1

import (
	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/service"
	"github.com/chainsaw-registry/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Chainsaw Registration API
// @version 1.0
// @description Chainsaw registration portal backend

// @BasePath /api/v1

// @securityDefinitions.apikey StaffAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initStaffRoutes(v1)
	h.initEquipmentRoutes(v1)
	h.initStatsRoutes(v1)
}
