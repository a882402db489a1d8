package probe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fakeCloud serves the three endpoints used by the client.
type fakeCloud struct {
	logins     atomic.Int32
	deviceHits atomic.Int32
	failFirst  int32 // number of /devices/{id} calls answered with 503
	expireOnce atomic.Bool
	devices    []string
}

func (f *fakeCloud) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status string, data any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "statusCode": 200, "data": data})
	}
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := f.logins.Add(1)
		write(w, "OK", map[string]string{"token": "tok" + string(rune('0'+n))})
	})
	mux.HandleFunc("/devices", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		list := make([]map[string]string, 0, len(f.devices))
		for _, id := range f.devices {
			list = append(list, map[string]string{"id": id})
		}
		write(w, "OK", map[string]any{"devices": list})
	})
	mux.HandleFunc("/devices/", func(w http.ResponseWriter, r *http.Request) {
		if f.expireOnce.CompareAndSwap(true, false) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if n := f.deviceHits.Add(1); n <= f.failFirst {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		write(w, "OK", map[string]any{
			"id":          r.URL.Path[len("/devices/"):],
			"temperature": map[string]any{"internal": 54.5, "ambient": nil},
		})
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeCloud) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL+"/", srv.Client())
	c.backoff = BackoffConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	return c
}

func TestClient_LoginDevicesDevice(t *testing.T) {
	f := &fakeCloud{devices: []string{"probe-a", "probe-b"}}
	c := newTestClient(t, f)
	ctx := context.Background()

	tok, err := c.Login(ctx, "cook@example.com", "secret")
	if err != nil || tok == "" {
		t.Fatalf("Login: %q %v", tok, err)
	}
	ids, err := c.Devices(ctx, tok)
	if err != nil || len(ids) != 2 || ids[0] != "probe-a" {
		t.Fatalf("Devices: %v %v", ids, err)
	}
	r, err := c.Device(ctx, tok, "probe-a")
	if err != nil {
		t.Fatalf("Device: %v", err)
	}
	if r.DeviceID != "probe-a" || r.Internal == nil || *r.Internal != 54.5 || r.Ambient != nil {
		t.Fatalf("unexpected reading: %+v", r)
	}
}

func TestClient_LoginRejected(t *testing.T) {
	c := newTestClient(t, &fakeCloud{})
	_, err := c.Login(context.Background(), "cook@example.com", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	f := &fakeCloud{failFirst: 2}
	c := newTestClient(t, f)

	if _, err := c.Device(context.Background(), "tok", "probe-a"); err != nil {
		t.Fatalf("Device after retries: %v", err)
	}
	if got := f.deviceHits.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	f := &fakeCloud{failFirst: 10}
	c := newTestClient(t, f)

	if _, err := c.Device(context.Background(), "tok", "probe-a"); !errors.Is(err, errServerError) {
		t.Fatalf("got %v, want server error", err)
	}
	if got := f.deviceHits.Load(); got != 3 {
		t.Fatalf("expected 1 attempt + 2 retries, got %d", got)
	}
}

func TestClient_NonOKEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Not Found","statusCode":404}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, srv.Client())
	if _, err := c.Devices(context.Background(), "tok"); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("got %v, want ErrBadStatus", err)
	}
}

func TestClient_CanceledContext(t *testing.T) {
	c := newTestClient(t, &fakeCloud{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Devices(ctx, "tok"); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestSession_RelogsOnExpiredToken(t *testing.T) {
	f := &fakeCloud{devices: []string{"probe-a"}}
	s := NewSession(newTestClient(t, f), "cook@example.com", "secret")
	ctx := context.Background()

	id, err := s.FirstDevice(ctx)
	if err != nil || id != "probe-a" {
		t.Fatalf("FirstDevice: %q %v", id, err)
	}

	f.expireOnce.Store(true)
	in, amb, err := s.Read(ctx, id)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if in == nil || *in != 54.5 || amb != nil {
		t.Fatalf("unexpected readings: %v %v", in, amb)
	}
	if got := f.logins.Load(); got != 2 {
		t.Fatalf("expected a second login, got %d logins", got)
	}
}

func TestSession_NoDevice(t *testing.T) {
	s := NewSession(newTestClient(t, &fakeCloud{}), "cook@example.com", "secret")
	if _, err := s.FirstDevice(context.Background()); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("got %v, want ErrNoDevice", err)
	}
}
