package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	link string
	err  error
}

func (f *fakeUI) Run(_ context.Context, surveyLink string) error {
	f.link = surveyLink
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: context.Canceled},
		{name: "ui failure", uiErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(ui, config.ClientApp{SurveyLink: "http://x/feedback/tok"}, logger.Nop())
			require.NoError(t, err)

			err = app.run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "http://x/feedback/tok", ui.link)
		})
	}
}
