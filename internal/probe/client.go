package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const DefaultBaseURL = "https://public-api.cloud.meater.com/v1"

var (
	ErrNoDevice  = errors.New("no probe device registered on the account")
	ErrBadStatus = errors.New("probe cloud returned a non-OK envelope")
)

// Reading is the temperature part of a device payload. Nil means the probe
// did not report that channel.
type Reading struct {
	DeviceID string   `json:"id"`
	Internal *float64 `json:"internal"`
	Ambient  *float64 `json:"ambient"`
}

// Client talks to the vendor's public cloud API.
type Client struct {
	baseURL string
	http    *http.Client
	backoff BackoffConfig
	circuit *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: newBreaker("probe-cloud"),
	}
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

// Login exchanges account credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}
	var data struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	err = c.call(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}, &data)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if data.Token == "" {
		return "", fmt.Errorf("login: %w: empty token", ErrBadStatus)
	}
	return data.Token, nil
}

// Devices lists the ids of the account's devices in the order the cloud returns them.
func (c *Client) Devices(ctx context.Context, token string) ([]string, error) {
	var data struct {
		Devices []struct {
			ID string `json:"id"`
		} `json:"devices"`
	}
	if err := c.call(ctx, c.authorized(token, "/devices"), &data); err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	ids := make([]string, 0, len(data.Devices))
	for _, d := range data.Devices {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// Device fetches the current readings of one device.
func (c *Client) Device(ctx context.Context, token, id string) (Reading, error) {
	var data struct {
		ID          string `json:"id"`
		Temperature struct {
			Internal *float64 `json:"internal"`
			Ambient  *float64 `json:"ambient"`
		} `json:"temperature"`
	}
	if err := c.call(ctx, c.authorized(token, "/devices/"+url.PathEscape(id)), &data); err != nil {
		return Reading{}, fmt.Errorf("read device %s: %w", id, err)
	}
	return Reading{DeviceID: data.ID, Internal: data.Temperature.Internal, Ambient: data.Temperature.Ambient}, nil
}

func (c *Client) authorized(token, path string) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return req, nil
	}
}

// call performs the request and unpacks the {status, data} envelope into out.
func (c *Client) call(ctx context.Context, build func() (*http.Request, error), out any) error {
	resp, err := do(ctx, c.http, c.circuit, c.backoff, build)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.Status != "OK" {
		return fmt.Errorf("%w: %q", ErrBadStatus, env.Status)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
