package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client shared by the ledger and relayer adapters.
// Embedding keeps the whole resty API available to callers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool and settings.
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://localhost:8545").SetTimeout(10 * time.Second)
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
