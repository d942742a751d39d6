package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// MeetingEmailData holds the form fields rendered into the operator email.
type MeetingEmailData struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
	Date    string
	Time    string
}

// meetingEmailTemplate matches the notification mail the marketing site has
// always sent. Company and Message rows only appear when filled in.
const meetingEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0891b2;">Yeni Görüşme Talebi</h2>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Ad Soyad:</strong> {{.Name}}</p>
    <p><strong>E-posta:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Telefon:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
    {{if .Company}}<p><strong>Şirket:</strong> {{.Company}}</p>{{end}}
    {{if .Message}}<p><strong>Mesaj:</strong><br/>{{.Message}}</p>{{end}}
    <p><strong>Tercih Edilen Tarih:</strong> {{.Date}}</p>
    <p><strong>Tercih Edilen Saat:</strong> {{.Time}}</p>
  </div>
  <p style="color: #6b7280; font-size: 12px;">Bu e-posta görüşme planlama formundan otomatik olarak gönderilmiştir.</p>
</div>`

var meetingTmpl = template.Must(template.New("meeting").Parse(meetingEmailTemplate))

// BuildMeetingMessage renders the operator notification for one submission.
// Reply-To is set to the submitter so the operator can answer directly.
func BuildMeetingMessage(from, to string, data MeetingEmailData) (Message, error) {
	var body bytes.Buffer
	if err := meetingTmpl.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("render meeting email: %w", err)
	}

	return Message{
		From:    from,
		To:      to,
		ReplyTo: data.Email,
		Subject: fmt.Sprintf("Yeni Görüşme Talebi - %s", data.Name),
		HTML:    body.String(),
	}, nil
}
