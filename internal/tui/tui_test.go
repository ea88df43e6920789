package tui

import (
	"testing"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	build := models.NewAppBuildInfo("1.0.0", "", "")

	_, err := New(nil, build, logger.Nop())
	assert.Error(t, err)

	_, err = New(&service.ClientServices{Session: mock.NewMockClientSessionStore(ctrl)}, build, logger.Nop())
	assert.Error(t, err)

	ui, err := New(&service.ClientServices{
		Session:           mock.NewMockClientSessionStore(ctrl),
		SessionController: mock.NewMockClientSessionController(ctrl),
	}, build, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, ui.pages(t.Context()), 7)
}
