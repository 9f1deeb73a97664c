package service

import (
	"github.com/MKhiriev/cookie-relay/internal/adapter"
	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/logger"
)

type ClientServices struct {
	RelayService ClientRelayService
}

func NewClientServices(relayAdapter adapter.RelayAdapter, codec crypto.Codec, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		RelayService: NewClientRelayService(relayAdapter, codec, logger),
	}
}
