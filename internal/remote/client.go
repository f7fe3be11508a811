// Package remote talks to the script web endpoint that owns products, orders
// and stock logs. Every call is one form-encoded POST carrying an "action"
// field; every answer is a {success, data, error|message} JSON envelope.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const maxBody = 8 << 20

type Client struct {
	URL  string
	HTTP *http.Client
	Log  *logrus.Entry
}

func New(endpoint string, timeout time.Duration, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		URL:  endpoint,
		HTTP: &http.Client{Timeout: timeout},
		Log:  log.WithField("component", "remote"),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// post sends params and returns the envelope's data. Empty params are left out
// the same way the web client skipped undefined/null fields; keys listed in
// always are sent even when empty so a field can be cleared.
func (c *Client) post(ctx context.Context, action string, params url.Values, always ...string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("action", action)
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				form.Add(k, v)
			}
		}
	}
	for _, k := range always {
		if !form.Has(k) && params.Has(k) {
			form.Set(k, "")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Action: action, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	log := c.Log.WithField("action", action)
	resp, err := c.http().Do(req)
	if err != nil {
		log.WithError(err).Warn("remote unreachable")
		return nil, &Error{Kind: KindNetwork, Action: action, Err: errors.Wrap(err, "post")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Action: action, Status: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}
	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "took": time.Since(start).String()})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("remote non-2xx")
		return nil, &Error{Kind: KindNetwork, Action: action, Status: resp.StatusCode, Payload: body,
			Err: errors.Errorf("http status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		log.WithError(err).Warn("remote malformed json")
		return nil, &Error{Kind: KindNetwork, Action: action, Status: resp.StatusCode, Payload: body,
			Err: errors.Wrap(err, "decode envelope")}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "API error"
		}
		log.WithField("remote_error", msg).Info("remote refused")
		return nil, &Error{Kind: KindDomain, Action: action, Status: resp.StatusCode, Message: msg, Payload: body}
	}
	log.Debug("remote ok")
	return env.Data, nil
}

func (c *Client) http() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// decodeList treats a missing or null list as empty. Anything that is not a
// JSON array is a malformed answer.
func decodeList[T any](action string, data json.RawMessage) ([]T, error) {
	s := bytes.TrimSpace(data)
	if len(s) == 0 || string(s) == "null" {
		return []T{}, nil
	}
	if s[0] != '[' {
		return nil, &Error{Kind: KindNetwork, Action: action, Payload: data, Err: errors.New("data is not a list")}
	}
	var out []T
	if err := json.Unmarshal(s, &out); err != nil {
		return nil, &Error{Kind: KindNetwork, Action: action, Payload: data, Err: errors.Wrap(err, "decode list")}
	}
	return out, nil
}

func decodeObject[T any](action string, data json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &Error{Kind: KindNetwork, Action: action, Payload: data, Err: errors.Wrap(err, "decode data")}
	}
	return out, nil
}
