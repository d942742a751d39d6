package domain

import "context"

// MeetingRequest is the payload collected by the meeting-scheduling form.
// Company and Message are optional; every other field must be present.
// Only presence is validated. Email shape, date ranges and phone formats
// are deliberately left unchecked, matching the form's behavior.
type MeetingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Company string `json:"company"`
	Message string `json:"message"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
}

// TimeSlots are the ranges the scheduling form offers.
var TimeSlots = []string{
	"09:00-11:00",
	"11:00-13:00",
	"13:00-15:00",
	"15:00-17:00",
	"17:00-19:00",
}

// User-facing copy for the meeting endpoint. These strings are the observable
// contract of POST /api/meeting and are asserted in tests.
const (
	MsgMissingFields     = "Lütfen tüm zorunlu alanları doldurun."
	MsgSendFailed        = "E-posta gönderilemedi. Lütfen daha sonra tekrar deneyin."
	MsgGenericError      = "Bir hata oluştu. Lütfen daha sonra tekrar deneyin."
	MsgRequestSent       = "Görüşme talebiniz başarıyla gönderildi!"
	MsgSimulatedDelivery = "Test modu: Form verisi alındı! (E-posta gönderilemedi - Resend API key eksik)"
)

// MeetingUsecase defines the meeting-request pipeline.
type MeetingUsecase interface {
	// SubmitMeetingRequest validates the payload and dispatches the operator
	// notification. The returned string is the user-facing success message,
	// which differs between real and simulated delivery.
	SubmitMeetingRequest(ctx context.Context, req *MeetingRequest) (string, error)
}
