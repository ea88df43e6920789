package service

import (
	"github.com/MKhiriev/go-job-board/internal/adapter"
	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
)

type ClientServices struct {
	Session           ClientSessionStore
	SessionController ClientSessionController
}

func NewClientServices(
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	push adapter.PushChannel,
	cfg config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	sessions := NewClientSessionStore(localStore.SessionRepository, serverAdapter, logger)

	return &ClientServices{
		Session:           sessions,
		SessionController: NewClientSessionController(sessions, serverAdapter, push, cfg.Workers, logger),
	}
}
