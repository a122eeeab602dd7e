package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/athenc-client/internal/config"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/utils"
	"github.com/MKhiriev/athenc-client/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
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

// Transform implements [ServerAdapter]. It POSTs the file content and the
// password as a multipart body to the route selected by mode and returns the
// binary response body together with the Content-Disposition filename
// suggestion.
//
// A fresh X-Request-Id header is attached to every request so the round trip
// can be correlated with log entries. Returns an error if the request fails
// at the transport level or the server responds with a non-2xx status; in
// the latter case the error text carries the server's detail message.
func (h *httpServerAdapter) Transform(ctx context.Context, mode models.Mode, fileName string, content io.Reader, password string) (models.ServerBlob, error) {
	requestID := utils.NewRequestID()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID).
		SetMultipartField("file", fileName, "application/octet-stream", content).
		SetFormData(map[string]string{"password": password}).
		Post(mode.Endpoint())
	if err != nil {
		h.logger.Error().Err(err).
			Str("request_id", requestID).
			Str("mode", mode.String()).
			Msg("transform request failed")
		return models.ServerBlob{}, fmt.Errorf("%s request: %w", mode, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Error().Err(err).
			Str("request_id", requestID).
			Str("mode", mode.String()).
			Int("status", resp.StatusCode()).
			Msg("transform rejected by server")
		return models.ServerBlob{}, err
	}

	blob := models.ServerBlob{
		Data:          resp.Body(),
		SuggestedName: utils.ParseContentDispositionFilename(resp.Header().Get("Content-Disposition")),
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Str("mode", mode.String()).
		Int("size", len(blob.Data)).
		Str("suggested_name", blob.SuggestedName).
		Msg("transform completed")

	return blob, nil
}
