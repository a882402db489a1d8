package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cooking_probe/internal/models"
	"cooking_probe/internal/repository"
	"cooking_probe/internal/repository/db"
)

func TestSQLiteRoundTrip(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "probe.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, typ := range []string{models.EventFit, models.EventPrediction, models.EventFit} {
		ev := models.ProbeEvent{
			OccurredAt:  base.Add(time.Duration(i) * time.Minute),
			Type:        typ,
			Description: typ,
			Metadata:    map[string]any{"i": i},
		}
		if err := repos.EventRepo.Append(ctx, ev); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	fits, err := repos.EventRepo.List(ctx, base, base.Add(time.Hour), "fit")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(fits) != 2 || !fits[1].OccurredAt.Equal(base.Add(2*time.Minute)) {
		t.Fatalf("unexpected fits: %+v", fits)
	}

	window, err := repos.EventRepo.List(ctx, base.Add(30*time.Second), base.Add(90*time.Second), "")
	if err != nil || len(window) != 1 || window[0].Type != models.EventPrediction {
		t.Fatalf("window query: %+v %v", window, err)
	}

	id, err := repos.Auth.Create(ctx, "chef", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	u, err := repos.Auth.GetByUsername(ctx, "chef")
	if err != nil || u == nil || u.ID != id {
		t.Fatalf("GetByUsername: %+v %v", u, err)
	}
	if _, err := repos.Auth.Create(ctx, "chef", "other"); err == nil {
		t.Fatalf("duplicate username must fail")
	}

	empty, err := repos.RecorderStatus.Load(ctx)
	if err != nil || empty.IsRunning {
		t.Fatalf("initial status: %+v %v", empty, err)
	}
	in := 48.5
	st := models.RecorderStatus{SessionID: "s", DeviceID: "d", FilePath: "f", SamplesWritten: 3, LastInternalC: &in, IsRunning: true, StartedAt: base}
	if err := repos.RecorderStatus.Save(ctx, st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	st.SamplesWritten = 4
	if err := repos.RecorderStatus.Save(ctx, st); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	got, err := repos.RecorderStatus.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.SamplesWritten != 4 || got.LastInternalC == nil || *got.LastInternalC != 48.5 || got.LastExternalC != nil || !got.StartedAt.Equal(base) {
		t.Fatalf("unexpected status: %+v", got)
	}
}
