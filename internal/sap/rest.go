package sap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

// The SAP PO interface speaks JSON over HTTP with the same basic auth and
// client header as the SOAP service. Responses are decoded into typed
// structs; a body that does not decode is a parse error, not an empty value.

// GetJSON performs a GET against the SAP PO interface
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON performs a POST with a JSON payload against the SAP PO interface
func (c *Client) PostJSON(ctx context.Context, path string, payload, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, payload, out)
}

// PutJSON performs a PUT with a JSON payload against the SAP PO interface
func (c *Client) PutJSON(ctx context.Context, path string, payload, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, payload, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	log := logger.FromContext(ctx)
	done := prometheus.TrackSAPCall(path, "rest")

	callURL := c.baseURL + path
	if len(query) > 0 {
		callURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			done("error")
			return parseError(path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, callURL, body)
	if err != nil {
		done("error")
		return transportError(path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("sap-client", c.sapClient)
	req.Header.Set("sap-language", c.language)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		done("error")
		terr := transportError(path, err)
		prometheus.SAPErrorCounter.WithLabelValues(path, terr.Kind.String()).Inc()
		log.Error("SAP PO request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return terr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		done("error")
		serr := statusError(path, resp.StatusCode)
		prometheus.SAPErrorCounter.WithLabelValues(path, serr.Kind.String()).Inc()
		log.Error("SAP PO error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return serr
	}

	if out == nil {
		done("ok")
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		done("error")
		prometheus.SAPErrorCounter.WithLabelValues(path, KindParse.String()).Inc()
		return parseError(path, err)
	}

	done("ok")
	return nil
}
