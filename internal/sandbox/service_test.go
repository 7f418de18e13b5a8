package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-visit-feedback/internal/app"
	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/store"
	"github.com/MKhiriev/go-visit-feedback/internal/validators"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type sentSurvey struct {
	customer models.CustomerRecord
	link     string
}

type recordingNotifier struct {
	sent []sentSurvey
	err  error
}

func (n *recordingNotifier) SendSurvey(_ context.Context, c models.CustomerRecord, link string) error {
	n.sent = append(n.sent, sentSurvey{customer: c, link: link})
	return n.err
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (Service, *recordingNotifier, *testClock) {
	t.Helper()
	notifier := &recordingNotifier{}
	clock := &testClock{now: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewService(
		store.NewMemoryStorage(&seqIDs{}, logger.Nop()),
		validators.NewFeedbackValidator(),
		config.SandboxLinks{PublicURL: "http://localhost:3000/", TTL: time.Hour},
		logger.Nop(),
		WithClock(clock.Now),
		WithNotifier(notifier),
	)
	return svc, notifier, clock
}

func testCustomer(consent bool) models.Customer {
	return models.Customer{
		Name:           " Ann Lee ",
		Email:          "ann@example.com",
		EmailConsent:   consent,
		PurposeOfVisit: "Deposit",
		BranchID:       "B-01",
		BranchName:     "Main",
		StaffName:      "Bob",
	}
}

func TestService_RegisterWithoutConsent(t *testing.T) {
	svc, notifier, _ := newTestService(t)

	created, err := svc.RegisterCustomer(context.Background(), testCustomer(false))
	require.NoError(t, err)
	assert.Equal(t, app.MsgCustomerCreated, created.Message)
	assert.NotEmpty(t, created.CustomerID)
	assert.Empty(t, created.SurveyToken)
	assert.False(t, created.EmailSent)
	assert.Empty(t, notifier.sent)

	customers, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ann Lee", customers[0].Name)
	assert.Equal(t, "B-01", customers[0].BranchID)
}

func TestService_RegisterWithConsentSendsLink(t *testing.T) {
	svc, notifier, _ := newTestService(t)

	created, err := svc.RegisterCustomer(context.Background(), testCustomer(true))
	require.NoError(t, err)
	assert.Equal(t, app.MsgCustomerCreatedEmailSent, created.Message)
	assert.True(t, created.EmailSent)
	require.NotEmpty(t, created.SurveyToken)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "http://localhost:3000/feedback/"+created.SurveyToken, notifier.sent[0].link)
	assert.Equal(t, "ann@example.com", notifier.sent[0].customer.Email)
}

func TestService_RegisterEmailFailure(t *testing.T) {
	svc, notifier, _ := newTestService(t)
	notifier.err = errors.New("smtp down")

	created, err := svc.RegisterCustomer(context.Background(), testCustomer(true))
	require.NoError(t, err)
	assert.Equal(t, app.MsgCustomerCreatedEmailFailed, created.Message)
	assert.False(t, created.EmailSent)
	assert.NotEmpty(t, created.SurveyToken)
}

func TestService_RegisterInvalid(t *testing.T) {
	svc, _, _ := newTestService(t)

	c := testCustomer(true)
	c.Email = "not-an-email"
	_, err := svc.RegisterCustomer(context.Background(), c)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestService_SurveyRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.RegisterCustomer(ctx, testCustomer(true))
	require.NoError(t, err)

	survey, err := svc.SurveyContext(ctx, created.SurveyToken)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", survey.CustomerName)
	assert.Equal(t, "Main", survey.BranchName)
	assert.Equal(t, "Deposit", survey.PurposeOfVisit)
	assert.Equal(t, app.MsgProvideFeedback, survey.Message)

	accepted, err := svc.SubmitFeedback(ctx, created.SurveyToken, models.FeedbackSubmission{StarRating: 2, TextualFeedback: " Long queue "})
	require.NoError(t, err)
	assert.Equal(t, app.MsgFeedbackSubmitted, accepted.Message)
	assert.NotEmpty(t, accepted.FeedbackID)
	assert.True(t, strings.HasPrefix(accepted.AzureFilePath, "feedback/"))

	_, err = svc.SurveyContext(ctx, created.SurveyToken)
	assert.ErrorIs(t, err, ErrInvalidSurveyLink)
	assert.ErrorIs(t, err, store.ErrSurveyTokenUsed)

	feedback, err := svc.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "negative", feedback[0].Sentiment)
	assert.Equal(t, "Long queue", feedback[0].TextualFeedback)
	assert.Equal(t, SummaryFor(2), feedback[0].GPTSummary)

	archived, err := svc.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "Bob", archived[0].CustomerData.StaffName)
}

func TestService_ExpiredToken(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	created, err := svc.RegisterCustomer(ctx, testCustomer(true))
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)

	_, err = svc.SurveyContext(ctx, created.SurveyToken)
	assert.ErrorIs(t, err, ErrInvalidSurveyLink)
	assert.ErrorIs(t, err, store.ErrSurveyTokenExpired)
}

func TestService_SubmitValidatesBeforeToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SubmitFeedback(context.Background(), "unknown", models.FeedbackSubmission{StarRating: 9, TextualFeedback: "fine"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, validators.ErrRatingOutOfRange)

	_, err = svc.SubmitFeedback(context.Background(), "unknown", models.FeedbackSubmission{StarRating: 4, TextualFeedback: "fine"})
	assert.ErrorIs(t, err, ErrInvalidSurveyLink)

	_, err = svc.SurveyContext(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidSurveyLink)
}

func TestSentimentFor(t *testing.T) {
	for rating, want := range map[int]string{1: "negative", 2: "negative", 3: "neutral", 4: "positive", 5: "positive"} {
		assert.Equal(t, want, SentimentFor(rating), "rating %d", rating)
	}
}

func TestSurveyEmail(t *testing.T) {
	c := models.CustomerRecord{Name: "Ann", BranchName: "Main", PurposeOfVisit: "Mortgage Enquiry", StaffName: "Bob"}

	body := SurveyEmail(c, "http://x/feedback/t")
	assert.Contains(t, body, "Dear Ann,")
	assert.Contains(t, body, "for mortgage enquiry")
	assert.Contains(t, body, "http://x/feedback/t")
	assert.True(t, strings.HasSuffix(body, "Bob\nMain"))
	assert.Equal(t, "We'd love your feedback, Ann!", SurveySubject(c))

	require.NoError(t, NewLogNotifier(logger.Nop()).SendSurvey(context.Background(), c, "http://x/feedback/t"))
}
