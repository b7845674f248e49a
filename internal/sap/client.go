package sap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"sapportal/pkg/config"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

// Client performs one-shot, stateless calls against the SAP backend. SOAP is
// used for the custom authentication service, JSON over HTTP for the SAP PO
// data interfaces. Failures are never retried; every call is user-initiated
// and single-shot.
type Client struct {
	baseURL     string
	servicePath string
	sapClient   string
	user        string
	password    string
	language    string
	httpClient  *http.Client
}

// NewClient creates a client from the SAP section of the portal configuration
func NewClient(cfg *config.SAPConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		servicePath: cfg.ServicePath,
		sapClient:   cfg.Client,
		user:        cfg.User,
		password:    cfg.Password,
		language:    cfg.Language,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// CallFunction sends one RFC function request over SOAP and returns the
// response output fields.
func (c *Client) CallFunction(ctx context.Context, function string, params []Param) (map[string]string, error) {
	log := logger.FromContext(ctx)
	done := prometheus.TrackSAPCall(function, "soap")

	envelope, err := BuildEnvelope(function, params)
	if err != nil {
		done("error")
		return nil, parseError(function, err)
	}

	callURL := fmt.Sprintf("%s%s?sap-client=%s", c.baseURL, c.servicePath, url.QueryEscape(c.sapClient))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewReader(envelope))
	if err != nil {
		done("error")
		return nil, transportError(function, err)
	}
	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "")
	req.Header.Set("Accept", "application/soap+xml, application/dime, multipart/related, text/*")
	req.SetBasicAuth(c.user, c.password)

	log.Debug("SAP SOAP request", zap.String("function", function), zap.String("url", callURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		done("error")
		terr := transportError(function, err)
		prometheus.SAPErrorCounter.WithLabelValues(function, terr.Kind.String()).Inc()
		log.Error("SAP SOAP request failed", zap.String("function", function), zap.Error(err))
		return nil, terr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		done("error")
		return nil, transportError(function, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		done("error")
		serr := statusError(function, resp.StatusCode)
		prometheus.SAPErrorCounter.WithLabelValues(function, serr.Kind.String()).Inc()
		log.Error("SAP SOAP error response",
			zap.String("function", function),
			zap.Int("status", resp.StatusCode))
		return nil, serr
	}

	fields, err := ParseResponse(function, body)
	if err != nil {
		done("error")
		prometheus.SAPErrorCounter.WithLabelValues(function, KindParse.String()).Inc()
		return nil, err
	}

	done("ok")
	log.Debug("SAP SOAP response parsed",
		zap.String("function", function),
		zap.Int("fields", len(fields)))
	return fields, nil
}
