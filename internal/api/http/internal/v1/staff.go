package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chainsaw-registry/backend/internal/service"
	"github.com/chainsaw-registry/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initStaffRoutes(api *gin.RouterGroup) {
	staff := api.Group("/staff")
	{
		staff.POST("/sign-in", h.staffSignIn)
	}
}

type staffSignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

type staffSignInResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// @Summary Staff Sign In
// @Tags Staff
// @Description Authenticate a staff member and issue an access token
// @ModuleID staffSignIn
// @Accept  json
// @Produce  json
// @Param input body staffSignInRequest true "Credentials"
// @Success 200 {object} staffSignInResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /staff/sign-in [post]
func (h *Handler) staffSignIn(c *gin.Context) {
	var req staffSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Staff.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			errorResponse(c, StaffNotFoundCode)
			return
		}
		logger.Error("staff sign in failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, staffSignInResponse{
		AccessToken: tokens.AccessToken,
		ExpiresIn:   int64(tokens.AccessTTL.Seconds()),
	})
}
