package store

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/models"
)

// archivePrefix is the virtual container of archive records.
const archivePrefix = "feedback"

type surveyToken struct {
	customerID string
	expiresAt  time.Time
	used       bool
}

// memoryStorage is the in-memory [Storage]. All methods are safe for
// concurrent use; listings return copies in insertion order.
type memoryStorage struct {
	mu sync.RWMutex

	customers     map[string]models.CustomerRecord
	customerOrder []string
	tokens        map[string]*surveyToken
	feedback      []models.FeedbackRecord
	archived      []models.ArchivedFeedback

	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewMemoryStorage builds an empty storage drawing record ids and survey
// tokens from ids.
func NewMemoryStorage(ids utils.IDGenerator, logger *logger.Logger) Storage {
	logger.Debug().Msg("creating in-memory storage")

	return &memoryStorage{
		customers: make(map[string]models.CustomerRecord),
		tokens:    make(map[string]*surveyToken),
		ids:       ids,
		logger:    logger,
	}
}

func (s *memoryStorage) CreateCustomer(_ context.Context, c models.CustomerRecord) (models.CustomerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.ids.Generate()
	if c.CreatedAt == "" {
		c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	s.customers[c.ID] = c
	s.customerOrder = append(s.customerOrder, c.ID)

	return c, nil
}

func (s *memoryStorage) ListCustomers(_ context.Context) ([]models.CustomerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CustomerRecord, 0, len(s.customerOrder))
	for _, id := range s.customerOrder {
		out = append(out, s.customers[id])
	}
	return out, nil
}

func (s *memoryStorage) IssueToken(_ context.Context, customerID string, expiresAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return "", fmt.Errorf("issue token for %q: %w", customerID, ErrCustomerNotFound)
	}

	token := s.ids.Generate()
	s.tokens[token] = &surveyToken{customerID: customerID, expiresAt: expiresAt}
	return token, nil
}

func (s *memoryStorage) LookupToken(_ context.Context, token string, now time.Time) (models.CustomerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.validToken(token, now)
	if err != nil {
		return models.CustomerRecord{}, err
	}
	c, ok := s.customers[t.customerID]
	if !ok {
		return models.CustomerRecord{}, ErrCustomerNotFound
	}
	return c, nil
}

func (s *memoryStorage) RedeemToken(_ context.Context, token string, now time.Time, fb models.FeedbackRecord) (models.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.validToken(token, now)
	if err != nil {
		return models.FeedbackRecord{}, err
	}
	c, ok := s.customers[t.customerID]
	if !ok {
		return models.FeedbackRecord{}, ErrCustomerNotFound
	}

	fb.ID = s.ids.Generate()
	fb.CustomerID = c.ID
	fb.CreatedAt = now.UTC().Format(time.RFC3339)
	fb.AzureFilePath = path.Join(archivePrefix, fb.ID+".json")

	t.used = true
	s.feedback = append(s.feedback, fb)
	s.archived = append(s.archived, archiveRecord(c, fb, token))

	return fb, nil
}

func (s *memoryStorage) DeleteExpired(_ context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, t := range s.tokens {
		if now.After(t.expiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed
}

func (s *memoryStorage) ListFeedback(_ context.Context) ([]models.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FeedbackRecord, len(s.feedback))
	copy(out, s.feedback)
	return out, nil
}

func (s *memoryStorage) ListArchived(_ context.Context) ([]models.ArchivedFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ArchivedFeedback, len(s.archived))
	copy(out, s.archived)
	return out, nil
}

// validToken must be called with s.mu held.
func (s *memoryStorage) validToken(token string, now time.Time) (*surveyToken, error) {
	t, ok := s.tokens[token]
	switch {
	case !ok:
		return nil, ErrSurveyTokenNotFound
	case t.used:
		return nil, ErrSurveyTokenUsed
	case now.After(t.expiresAt):
		return nil, ErrSurveyTokenExpired
	}
	return t, nil
}

func archiveRecord(c models.CustomerRecord, fb models.FeedbackRecord, token string) models.ArchivedFeedback {
	var a models.ArchivedFeedback
	a.FeedbackID = fb.ID

	a.CustomerData.Name = c.Name
	a.CustomerData.Email = c.Email
	a.CustomerData.PurposeOfVisit = c.PurposeOfVisit
	a.CustomerData.BranchName = c.BranchName
	a.CustomerData.StaffName = c.StaffName

	a.Feedback.StarRating = fb.StarRating
	a.Feedback.TextualFeedback = fb.TextualFeedback
	a.Feedback.Sentiment = fb.Sentiment
	a.Feedback.GPTSummary = fb.GPTSummary

	a.Metadata.SubmissionTime = fb.CreatedAt
	a.Metadata.SurveyToken = token
	return a
}
