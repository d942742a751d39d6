// Package meetingclient drives a meeting-request submission the same way the
// web form does: collect fields, submit once, surface the outcome.
package meetingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
)

// State tracks where a form is in its submit cycle.
type State int

const (
	StateIdle State = iota
	StatePending
	StateResolved
)

// Fields holds the values entered into the form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// Result mirrors the endpoint's response envelope.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrPending is returned when Submit is called while a submission is in
// flight. The web form prevents this by disabling the button.
var ErrPending = errors.New("a submission is already in flight")

const genericFailure = "Bir hata oluştu. Lütfen daha sonra tekrar deneyin."

// Form is a stateful submission client. Safe for concurrent use; only one
// submission can be in flight at a time.
type Form struct {
	endpoint   string
	httpClient *http.Client

	mu     sync.Mutex
	fields Fields
	state  State
	result *Result
}

func NewForm(baseURL string) *Form {
	return &Form{
		endpoint:   strings.TrimRight(baseURL, "/") + "/api/meeting",
		httpClient: &http.Client{},
	}
}

// SetFields replaces the entered values.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Result returns the outcome of the last submission, or nil before the
// first one resolves.
func (f *Form) Result() *Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Submit sends the current fields to the endpoint. A transport fault yields
// a local generic-failure result rather than an error; entered fields are
// cleared only on success. The pending state is released on every exit path.
func (f *Form) Submit(ctx context.Context) (*Result, error) {
	f.mu.Lock()
	if f.state == StatePending {
		f.mu.Unlock()
		return nil, ErrPending
	}
	f.state = StatePending
	f.result = nil
	payload := f.fields
	f.mu.Unlock()

	var result *Result
	defer func() {
		f.mu.Lock()
		f.state = StateResolved
		f.result = result
		if result != nil && result.Success {
			f.fields = Fields{}
		}
		f.mu.Unlock()
	}()

	result = f.post(ctx, payload)
	return result, nil
}

func (f *Form) post(ctx context.Context, payload Fields) *Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Result{Success: false, Error: genericFailure}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return &Result{Success: false, Error: genericFailure}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return &Result{Success: false, Error: genericFailure}
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &Result{Success: false, Error: genericFailure}
	}
	return &result
}
