package v1

import (
	"net/http"

	"ajans99-backend/internal/delivery/http/response"
	"ajans99-backend/internal/domain"
	"ajans99-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	meetingUC domain.MeetingUsecase
}

// NewMeetingHandler registers the meeting-request route (public, no auth).
func NewMeetingHandler(api *gin.RouterGroup, meetingUC domain.MeetingUsecase) {
	handler := &MeetingHandler{
		meetingUC: meetingUC,
	}

	api.POST("/meeting", handler.Submit)
}

// Submit handles POST /api/meeting: parse, validate, dispatch, respond.
func (h *MeetingHandler) Submit(c *gin.Context) {
	var req domain.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body gets the same generic copy as any other fault.
		c.Error(apperror.Internal(domain.MsgGenericError, err))
		return
	}

	message, err := h.meetingUC.SubmitMeetingRequest(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message)
}
