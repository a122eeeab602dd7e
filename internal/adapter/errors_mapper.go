package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/athenc-client/models"
	"github.com/go-resty/resty/v2"
)

// MsgUnknownServerError is the fallback detail text used when a non-2xx
// response body is not valid JSON or carries no "detail" field.
const MsgUnknownServerError = "unknown server error"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := extractDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// extractDetail pulls the human-readable message out of the server's
// structured error payload ({"detail": "..."}). Any parse failure or an
// absent/blank field falls back to [MsgUnknownServerError].
func extractDetail(body []byte) string {
	var serverErr models.ServerError
	if err := json.Unmarshal(body, &serverErr); err != nil {
		return MsgUnknownServerError
	}

	detail := strings.TrimSpace(serverErr.Detail)
	if detail == "" {
		return MsgUnknownServerError
	}

	return detail
}
