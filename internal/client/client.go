// Package client habla con la API de eventos usando el formato de líneas
// "id|fecha|título|texto".
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"events-calendar/internal/domain/events"
	"events-calendar/internal/platform/httpclient"
)

const eventsPath = "/api/v1/events"

type Client struct {
	http *httpclient.Client
}

// New crea un cliente contra baseURL (p.ej. http://localhost:8080).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, errors.New("client: base url required")
	}
	return &Client{http: hc}, nil
}

// List trae todos los eventos, o sólo los del mes "YYYY-MM" si month no es vacío.
func (c *Client) List(ctx context.Context, month string) ([]events.Record, error) {
	path := eventsPath + "/"
	if month = strings.TrimSpace(month); month != "" {
		q := url.Values{}
		q.Set("month", month)
		path += "?" + q.Encode()
	}

	resp, err := c.http.DoText(ctx, http.MethodGet, path, "")
	if err != nil {
		return nil, err
	}
	return events.Decode(resp.Body), nil
}

func (c *Client) Get(ctx context.Context, id string) (events.Record, error) {
	resp, err := c.http.DoText(ctx, http.MethodGet, eventPath(id), "")
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return events.Record{}, events.ErrNotFound
		}
		return events.Record{}, err
	}

	recs := events.Decode(resp.Body)
	if len(recs) == 0 {
		return events.Record{}, events.ErrNotFound
	}
	return recs[0], nil
}

// Create valida localmente y, si pasa, crea el evento. Devuelve el ID asignado.
func (c *Client) Create(ctx context.Context, date, title, text string) (string, error) {
	if err := events.Validate(date, title, text); err != nil {
		return "", err
	}

	resp, err := c.http.DoText(ctx, http.MethodPost, eventsPath+"/", events.Encode(date, title, text))
	if err != nil {
		return "", err
	}

	id := strings.TrimSpace(resp.Body)
	if id == "" {
		return "", fmt.Errorf("client: empty id in create response")
	}
	return id, nil
}

func (c *Client) Update(ctx context.Context, id, date, title, text string) error {
	if err := events.Validate(date, title, text); err != nil {
		return err
	}

	_, err := c.http.DoText(ctx, http.MethodPut, eventPath(id), events.Encode(date, title, text))
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return events.ErrNotFound
	}
	return err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.http.DoText(ctx, http.MethodDelete, eventPath(id), "")
	return err
}

func eventPath(id string) string {
	return eventsPath + "/" + url.PathEscape(strings.TrimSpace(id)) + "/"
}
