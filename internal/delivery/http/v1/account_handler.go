package v1

import (
	"net/http"

	"ajans99-backend/internal/domain"
	"ajans99-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUC domain.AccountUsecase
}

// NewAccountHandler registers the read-only dashboard data routes. They run
// behind SessionAuth and answer null, not 401, for anonymous visitors.
func NewAccountHandler(session *gin.RouterGroup, accountUC domain.AccountUsecase) {
	handler := &AccountHandler{
		accountUC: accountUC,
	}

	session.GET("/user", handler.CurrentUser)
	session.GET("/team", handler.CurrentTeam)
}

// CurrentUser handles GET /api/user.
func (h *AccountHandler) CurrentUser(c *gin.Context) {
	user, err := h.accountUC.CurrentUser(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(domain.MsgGenericError, err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// CurrentTeam handles GET /api/team.
func (h *AccountHandler) CurrentTeam(c *gin.Context) {
	team, err := h.accountUC.CurrentTeam(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(domain.MsgGenericError, err))
		return
	}
	c.JSON(http.StatusOK, team)
}
