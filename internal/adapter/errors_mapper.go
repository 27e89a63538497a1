package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrServiceUnavailable,
}

// remoteError is the error body both the gateway and the relayer reply with.
type remoteError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp.Body(), resp.StatusCode())
	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

func errorMessage(body []byte, status int) string {
	var remote remoteError
	if err := json.Unmarshal(body, &remote); err == nil {
		switch {
		case remote.Error != "" && remote.Reason != "":
			return remote.Error + ": " + remote.Reason
		case remote.Error != "":
			return remote.Error
		case remote.Reason != "":
			return remote.Reason
		}
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
