package commands

import (
	"github.com/MKhiriev/go-expense-vault/internal/client"
	"github.com/MKhiriev/go-expense-vault/internal/service"
)

// App is the part of the client runtime the commands drive.
type App interface {
	client.Client
	Services() *service.ClientServices
}
