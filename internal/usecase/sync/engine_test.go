package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

type fakeDestination struct {
	name        string
	exists      bool
	existsErr   error
	writeErr    error
	existsCalls int
	writeCalls  int
	seen        []string
}

func (f *fakeDestination) Name() string { return f.name }

func (f *fakeDestination) Exists(_ context.Context, meetingID string) (bool, error) {
	f.existsCalls++
	f.seen = append(f.seen, meetingID)
	return f.exists, f.existsErr
}

func (f *fakeDestination) Write(_ context.Context, t *entities.Transcript) error {
	f.writeCalls++
	return f.writeErr
}

func TestEngineWritesToEveryDestination(t *testing.T) {
	a := &fakeDestination{name: "a"}
	b := &fakeDestination{name: "b"}
	engine := NewEngine(zap.NewNop(), 0, a, b)

	engine.Sync(context.Background(), &entities.Transcript{ID: "M1"})

	if a.writeCalls != 1 || b.writeCalls != 1 {
		t.Fatalf("write calls = %d, %d, want 1, 1", a.writeCalls, b.writeCalls)
	}
}

func TestEngineSkipsDuplicates(t *testing.T) {
	dest := &fakeDestination{name: "a", exists: true}
	engine := NewEngine(zap.NewNop(), 0, dest)

	engine.Sync(context.Background(), &entities.Transcript{ID: "M1"})
	engine.Sync(context.Background(), &entities.Transcript{ID: "M1"})

	if dest.existsCalls != 2 {
		t.Fatalf("exists calls = %d, want 2", dest.existsCalls)
	}
	if dest.writeCalls != 0 {
		t.Fatalf("write calls = %d, want 0", dest.writeCalls)
	}
}

func TestEngineTrimsMeetingID(t *testing.T) {
	dest := &fakeDestination{name: "a"}
	engine := NewEngine(zap.NewNop(), 0, dest)

	engine.Sync(context.Background(), &entities.Transcript{ID: "  M1  "})

	if len(dest.seen) != 1 || dest.seen[0] != "M1" {
		t.Fatalf("duplicate check saw %v, want [M1]", dest.seen)
	}
}

func TestEngineContinuesAfterWriteFailure(t *testing.T) {
	failing := &fakeDestination{name: "a", writeErr: errors.New("quota exceeded")}
	healthy := &fakeDestination{name: "b"}
	engine := NewEngine(zap.NewNop(), 0, failing, healthy)

	engine.Sync(context.Background(), &entities.Transcript{ID: "M1"})

	if healthy.writeCalls != 1 {
		t.Fatalf("healthy destination write calls = %d, want 1", healthy.writeCalls)
	}
}

func TestEngineSkipsWriteWhenCheckFails(t *testing.T) {
	dest := &fakeDestination{name: "a", existsErr: errors.New("unreachable")}
	engine := NewEngine(zap.NewNop(), 0, dest)

	engine.Sync(context.Background(), &entities.Transcript{ID: "M1"})

	if dest.writeCalls != 0 {
		t.Fatalf("write calls = %d, want 0 after failed duplicate check", dest.writeCalls)
	}
}

func TestEngineStopsOnCancelledContext(t *testing.T) {
	a := &fakeDestination{name: "a"}
	b := &fakeDestination{name: "b"}
	engine := NewEngine(zap.NewNop(), time.Hour, a, b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engine.Sync(ctx, &entities.Transcript{ID: "M1"})

	if b.existsCalls != 0 {
		t.Fatalf("second destination reached %d times after cancellation, want 0", b.existsCalls)
	}
}
