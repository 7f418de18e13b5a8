package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/sandbox"
	"github.com/MKhiriev/go-visit-feedback/internal/store"
	"github.com/MKhiriev/go-visit-feedback/internal/validators"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := sandbox.NewService(
		store.NewMemoryStorage(&seqIDs{prefix: "id-"}, logger.Nop()),
		validators.NewFeedbackValidator(),
		config.SandboxLinks{PublicURL: "http://localhost:3000", TTL: time.Hour},
		logger.Nop(),
	)
	return NewHandler(svc, &seqIDs{prefix: "trace-"}, logger.Nop()).Init()
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

const validCustomer = `{
	"name": "Ann Lee",
	"email": "ann@example.com",
	"mobile": "+15551234567",
	"email_consent": true,
	"purpose_of_visit": "Deposit",
	"branch_id": "B-01",
	"branch_name": "Main",
	"staff_name": "Bob"
}`

func TestRouter_SurveyRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodPost, "/api/customers", validCustomer)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := decode[models.CustomerCreated](t, rr)
	assert.Equal(t, app.MsgCustomerCreatedEmailSent, created.Message)
	require.NotEmpty(t, created.SurveyToken)

	rr = do(t, router, http.MethodGet, "/api/feedback/"+created.SurveyToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	survey := decode[models.SurveyContext](t, rr)
	assert.Equal(t, "Ann Lee", survey.CustomerName)
	assert.Equal(t, "Main", survey.BranchName)

	rr = do(t, router, http.MethodPost, "/api/feedback/"+created.SurveyToken, `{"star_rating": 5, "textual_feedback": "Quick and friendly"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	accepted := decode[models.FeedbackAccepted](t, rr)
	assert.Equal(t, app.MsgFeedbackSubmitted, accepted.Message)

	rr = do(t, router, http.MethodGet, "/api/feedback/"+created.SurveyToken, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgInvalidSurveyLink, decode[models.ErrorResponse](t, rr).Message())

	rr = do(t, router, http.MethodPost, "/api/feedback/"+created.SurveyToken, `{"star_rating": 5, "textual_feedback": "again"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgInvalidToken, decode[models.ErrorResponse](t, rr).Message())

	customers := decode[[]models.CustomerRecord](t, do(t, router, http.MethodGet, "/api/customers", ""))
	require.Len(t, customers, 1)
	assert.Equal(t, created.CustomerID, customers[0].ID)

	feedback := decode[[]models.FeedbackRecord](t, do(t, router, http.MethodGet, "/api/feedback", ""))
	require.Len(t, feedback, 1)
	assert.Equal(t, "positive", feedback[0].Sentiment)

	archived := decode[[]models.ArchivedFeedback](t, do(t, router, http.MethodGet, "/api/azure-data", ""))
	require.Len(t, archived, 1)
	assert.Equal(t, created.SurveyToken, archived[0].Metadata.SurveyToken)
}

func TestRouter_EmptyListsAreArrays(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/customers", "/api/feedback", "/api/azure-data"} {
		rr := do(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, rr.Code, target)
		assert.JSONEq(t, `[]`, rr.Body.String(), target)
	}
}

func TestRouter_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantLoc []any
		wantMsg string
	}{
		{
			name:    "invalid email",
			method:  http.MethodPost,
			target:  "/api/customers",
			body:    `{"name":"Ann","email":"nope","purpose_of_visit":"Deposit","branch_id":"B","branch_name":"Main","staff_name":"Bob"}`,
			wantLoc: []any{"body", "email"},
		},
		{
			name:    "rating above range",
			method:  http.MethodPost,
			target:  "/api/feedback/unknown",
			body:    `{"star_rating": 6, "textual_feedback": "ok"}`,
			wantLoc: []any{"body", "star_rating"},
			wantMsg: "Input should be less than or equal to 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())

			var body struct {
				Detail []models.ValidationIssue `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			require.NotEmpty(t, body.Detail)

			var found *models.ValidationIssue
			for i := range body.Detail {
				if assert.ObjectsAreEqual(tt.wantLoc, body.Detail[i].Loc) {
					found = &body.Detail[i]
				}
			}
			require.NotNil(t, found, "no issue at %v in %s", tt.wantLoc, rr.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, found.Msg)
			}
		})
	}
}

func TestRouter_BadJSON(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodPost, "/api/customers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decode[models.ErrorResponse](t, rr).Message())
}

func TestRouter_HealthAndRoot(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"`+app.MsgAPIRunning+`"}`, rr.Body.String())
}

func TestRouter_UnregisteredMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodDelete, "/api/customers", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, "trace-1", rr.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "from-client")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "from-client", rr.Header().Get("X-Trace-ID"))
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(fmt.Errorf("%w: %w", sandbox.ErrInvalidSurveyLink, store.ErrSurveyTokenUsed)))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFromError(fmt.Errorf("%w: bad", sandbox.ErrInvalidRequest)))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom")))
}
