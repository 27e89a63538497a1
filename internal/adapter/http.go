package adapter

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/go-resty/resty/v2"
)

// sessionHeader carries the id of the ledger session a request belongs to.
const sessionHeader = "X-Session-ID"

func newRESTClient(rawURL string, timeout time.Duration) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(rawURL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(propagateSessionID)

	return client, nil
}

func propagateSessionID(_ *resty.Client, r *resty.Request) error {
	if id, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		r.SetHeader(sessionHeader, id.String())
	}
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// computeTransportHash returns the hex HMAC of the JSON form of v. The pool
// must be initialised with utils.InitHasherPool.
func computeTransportHash(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
