package usecase

import (
	"context"
	"errors"
	"strings"

	"ajans99-backend/internal/domain"
	"ajans99-backend/pkg/apperror"
	"ajans99-backend/pkg/logger"
	"ajans99-backend/pkg/mailer"

	"github.com/go-playground/validator/v10"
)

type meetingUsecase struct {
	sender    mailer.Sender
	validate  *validator.Validate
	fromEmail string
	toEmail   string
}

// NewMeetingUsecase creates the meeting-request pipeline. fromEmail must be a
// verified Resend sender; toEmail is the operator inbox.
func NewMeetingUsecase(sender mailer.Sender, validate *validator.Validate, fromEmail, toEmail string) domain.MeetingUsecase {
	return &meetingUsecase{
		sender:    sender,
		validate:  validate,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SubmitMeetingRequest runs the pipeline: presence validation, then exactly
// one dispatch attempt. The payload is never persisted.
func (uc *meetingUsecase) SubmitMeetingRequest(ctx context.Context, req *domain.MeetingRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)

	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Info("meeting request rejected, missing required fields")
		return "", apperror.BadRequest(domain.MsgMissingFields)
	}

	logger.Log.Info("meeting request received",
		"name", req.Name,
		"email", req.Email,
		"phone", req.Phone,
		"company", req.Company,
		"date", req.Date,
		"time", req.Time,
	)

	msg, err := mailer.BuildMeetingMessage(uc.fromEmail, uc.toEmail, mailer.MeetingEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Date:    req.Date,
		Time:    req.Time,
	})
	if err != nil {
		logger.Log.Error("failed to build meeting email", "error", err)
		return "", apperror.Internal(domain.MsgGenericError, err)
	}

	receipt, err := uc.sender.Send(ctx, msg)
	if err != nil {
		var provErr *mailer.ProviderError
		if errors.As(err, &provErr) {
			// Provider detail stays in the logs; the caller only sees generic copy.
			logger.Log.Error("resend rejected meeting email",
				"status", provErr.StatusCode,
				"provider_message", provErr.Message,
			)
			return "", apperror.Internal(domain.MsgSendFailed, err)
		}
		logger.Log.Error("meeting email dispatch failed", "error", err)
		return "", apperror.Internal(domain.MsgGenericError, err)
	}

	if receipt.Simulated {
		return domain.MsgSimulatedDelivery, nil
	}

	logger.Log.Info("meeting email sent", "id", receipt.ID)
	return domain.MsgRequestSent, nil
}
