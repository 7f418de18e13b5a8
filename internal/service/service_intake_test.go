package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/mock"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIntakeService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockFeedbackAPI(ctrl)
	svc := NewIntakeService(api, logger.Nop())
	ctx := context.Background()

	customer := models.Customer{Name: "Ann", Email: "a@b.co", EmailConsent: true}
	api.EXPECT().CreateCustomer(ctx, customer).Return(models.CustomerCreated{
		CustomerID:  "c-1",
		SurveyToken: "tok-1",
		EmailSent:   true,
	}, nil)

	created, err := svc.Register(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "c-1", created.CustomerID)
	assert.True(t, created.EmailSent)
}

func TestIntakeService_Register_Errors(t *testing.T) {
	tests := []struct {
		name       string
		apiErr     error
		wantIs     []error
		wantDetail string
	}{
		{
			name:       "server detail kept",
			apiErr:     &adapter.APIError{Status: http.StatusUnprocessableEntity, Message: "value is not a valid email address", Err: adapter.ErrUnprocessable},
			wantIs:     []error{adapter.ErrUnprocessable},
			wantDetail: "value is not a valid email address",
		},
		{
			name:   "connection refused",
			apiErr: errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"),
			wantIs: []error{ErrAPIUnavailable},
		},
		{
			name:   "bad gateway",
			apiErr: &adapter.APIError{Status: http.StatusBadGateway, Err: adapter.ErrBadGateway},
			wantIs: []error{ErrAPIUnavailable, adapter.ErrBadGateway},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock.NewMockFeedbackAPI(ctrl)
			svc := NewIntakeService(api, logger.Nop())

			api.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(models.CustomerCreated{}, tt.apiErr)

			_, err := svc.Register(context.Background(), models.Customer{Name: "Ann"})
			require.Error(t, err)
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}

			var apiErr *adapter.APIError
			if tt.wantDetail != "" {
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantDetail, apiErr.Detail())
			}
		})
	}
}
