package service

import (
	"github.com/MKhiriev/athenc-client/internal/adapter"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/store"
)

// ClientServices aggregates every service used by the client runtime.
type ClientServices struct {
	TransferService TransferService
}

// NewClientServices wires the default service implementations.
func NewClientServices(downloads store.DownloadStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		TransferService: NewTransferService(serverAdapter, downloads, log),
	}
}
