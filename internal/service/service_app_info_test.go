package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfgVersion  string
		build       models.AppBuildInfo
		wantVersion string
		wantDate    string
		wantErr     error
	}{
		{
			name:        "linked version wins over config",
			cfgVersion:  "1.0.0",
			build:       models.NewAppBuildInfo("4.0.0", "2026-10-01", "abc1234"),
			wantVersion: "4.0.0",
			wantDate:    "2026-10-01",
		},
		{
			name:        "config version without linker flags",
			cfgVersion:  "1.2.3",
			build:       models.AppBuildInfo{},
			wantVersion: "1.2.3",
			wantDate:    models.BuildInfoNotAvailable,
		},
		{
			name:        "N/A placeholder falls back to config",
			cfgVersion:  "1.2.3",
			build:       models.NewAppBuildInfo(models.BuildInfoNotAvailable, "", ""),
			wantVersion: "1.2.3",
			wantDate:    models.BuildInfoNotAvailable,
		},
		{
			name:    "no version anywhere",
			build:   models.AppBuildInfo{},
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.cfgVersion}, tt.build, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(ctx))

			info := svc.GetBuildInfo(ctx)
			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
		})
	}
}

func TestAppInfoService_VersionIsStable(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
	}
}
