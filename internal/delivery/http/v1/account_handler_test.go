package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ajans99-backend/internal/domain"
	"ajans99-backend/pkg/mailer"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func sessionCookie(t *testing.T, secret string, userID int64) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user":    map[string]interface{}{"id": userID},
		"expires": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}
	return &http.Cookie{Name: "session", Value: signed}
}

func getJSON(router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCurrentUser_NoSession(t *testing.T) {
	router := newTestRouter(&fakeSender{receipt: &mailer.Receipt{Simulated: true}}, &fakeAccountUC{})

	rec := getJSON(router, "/api/user", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestCurrentUser_InvalidSignature(t *testing.T) {
	router := newTestRouter(&fakeSender{}, &fakeAccountUC{user: &domain.User{ID: 1}})

	cookie := sessionCookie(t, "wrong-secret", 1)
	rec := getJSON(router, "/api/user", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestCurrentUser_WithSession(t *testing.T) {
	name := "Test User"
	accountUC := &fakeAccountUC{user: &domain.User{
		ID:    1,
		Name:  &name,
		Email: "test@test.com",
		Role:  "owner",
	}}
	router := newTestRouter(&fakeSender{}, accountUC)

	cookie := sessionCookie(t, "test-secret", 1)
	rec := getJSON(router, "/api/user", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)

	var user domain.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "test@test.com", user.Email)
	assert.Equal(t, "owner", user.Role)
}

func TestCurrentTeam_NoSession(t *testing.T) {
	router := newTestRouter(&fakeSender{}, &fakeAccountUC{team: &domain.Team{ID: 7}})

	rec := getJSON(router, "/api/team", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestCurrentTeam_WithSession(t *testing.T) {
	accountUC := &fakeAccountUC{team: &domain.Team{
		ID:   7,
		Name: "Test Team",
		Members: []domain.TeamMember{
			{ID: 1, UserID: 1, TeamID: 7, Role: "owner", User: domain.User{ID: 1, Email: "test@test.com"}},
		},
	}}
	router := newTestRouter(&fakeSender{}, accountUC)

	cookie := sessionCookie(t, "test-secret", 1)
	rec := getJSON(router, "/api/team", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)

	var team domain.Team
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	assert.Equal(t, "Test Team", team.Name)
	assert.Len(t, team.Members, 1)
	assert.Equal(t, "owner", team.Members[0].Role)
}
