package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testMessage() Message {
	return Message{
		From:    "Ajans 99 <onboarding@resend.dev>",
		To:      "info@ajans99.com",
		ReplyTo: "ayse@example.com",
		Subject: "Yeni Görüşme Talebi - Ayşe Yılmaz",
		HTML:    "<p>test</p>",
	}
}

func TestClientSend_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"4ef93-acme-1"}`))
	}))
	defer srv.Close()

	c := NewClient("re_test_key")
	c.baseURL = srv.URL

	receipt, err := c.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "4ef93-acme-1", receipt.ID)
	assert.False(t, receipt.Simulated)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "Ajans 99 <onboarding@resend.dev>", gotBody["from"])
	assert.Equal(t, []any{"info@ajans99.com"}, gotBody["to"])
	assert.Equal(t, "ayse@example.com", gotBody["reply_to"])
	assert.Equal(t, "Yeni Görüşme Talebi - Ayşe Yılmaz", gotBody["subject"])
	assert.Equal(t, "<p>test</p>", gotBody["html"])
}

func TestClientSend_ProviderRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"The from address is not verified"}`))
	}))
	defer srv.Close()

	c := NewClient("re_test_key")
	c.baseURL = srv.URL

	receipt, err := c.Send(context.Background(), testMessage())
	assert.Nil(t, receipt)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusUnprocessableEntity, provErr.StatusCode)
	assert.Equal(t, "The from address is not verified", provErr.Message)
}

func TestClientSend_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient("re_test_key")
	c.baseURL = srv.URL

	receipt, err := c.Send(context.Background(), testMessage())
	assert.Nil(t, receipt)
	require.Error(t, err)

	var provErr *ProviderError
	assert.False(t, errors.As(err, &provErr))
}

func TestSimulatedSend(t *testing.T) {
	s := NewSimulatedSender(discardLogger())

	receipt, err := s.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.True(t, receipt.Simulated)
	assert.Empty(t, receipt.ID)
}

func TestBuildMeetingMessage(t *testing.T) {
	data := MeetingEmailData{
		Name:  "Ayşe Yılmaz",
		Email: "ayse@example.com",
		Phone: "+905551234567",
		Date:  "2025-03-10",
		Time:  "09:00-11:00",
	}

	msg, err := BuildMeetingMessage("Ajans 99 <onboarding@resend.dev>", "info@ajans99.com", data)
	require.NoError(t, err)

	assert.Equal(t, "info@ajans99.com", msg.To)
	assert.Equal(t, "ayse@example.com", msg.ReplyTo)
	assert.Equal(t, "Yeni Görüşme Talebi - Ayşe Yılmaz", msg.Subject)
	assert.Contains(t, msg.HTML, "Ayşe Yılmaz")
	assert.Contains(t, msg.HTML, "mailto:ayse@example.com")
	assert.Contains(t, msg.HTML, "tel:+905551234567")
	assert.NotContains(t, msg.HTML, "Şirket")
	assert.NotContains(t, msg.HTML, "Mesaj")

	data.Company = "Acme A.Ş."
	data.Message = "Detaylı bilgi almak istiyorum"
	msg, err = BuildMeetingMessage("Ajans 99 <onboarding@resend.dev>", "info@ajans99.com", data)
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "Şirket")
	assert.Contains(t, msg.HTML, "Acme A.Ş.")
	assert.Contains(t, msg.HTML, "Detaylı bilgi almak istiyorum")
}

func TestBuildMeetingMessage_EscapesHTML(t *testing.T) {
	data := MeetingEmailData{
		Name:  "<script>alert(1)</script>",
		Email: "x@example.com",
		Phone: "1",
		Date:  "2025-03-10",
		Time:  "09:00-11:00",
	}

	msg, err := BuildMeetingMessage("a@b.c", "d@e.f", data)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
}
