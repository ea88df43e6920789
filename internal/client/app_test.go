package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func TestApp_Run(t *testing.T) {
	errUI := errors.New("terminal is gone")

	tests := []struct {
		name     string
		startErr error
		uiErr    error
		wantErr  error
		wantUI   bool
	}{
		{name: "user quits", uiErr: tui.ErrUserQuit, wantUI: true},
		{name: "context done", wantUI: true},
		{name: "ui fails", uiErr: errUI, wantErr: errUI, wantUI: true},
		{name: "restore fails", startErr: errors.New("sqlite: disk I/O error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := mock.NewMockClientSessionController(gomock.NewController(t))
			controller.EXPECT().Start(gomock.Any()).Return(tt.startErr)
			if tt.startErr == nil {
				controller.EXPECT().Close()
			}

			ranUI := false
			app, err := NewApp(&service.ClientServices{SessionController: controller}, uiFunc(func(context.Context) error {
				ranUI = true
				return tt.uiErr
			}), logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			switch {
			case tt.startErr != nil:
				assert.ErrorIs(t, err, tt.startErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantUI, ranUI)
		})
	}
}

func TestNewApp_Validation(t *testing.T) {
	ui := uiFunc(func(context.Context) error { return nil })

	_, err := NewApp(nil, ui, logger.Nop())
	assert.Error(t, err)

	controller := mock.NewMockClientSessionController(gomock.NewController(t))
	_, err = NewApp(&service.ClientServices{SessionController: controller}, nil, logger.Nop())
	assert.Error(t, err)
}
