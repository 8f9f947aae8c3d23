package sync

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestClientFilterCopiesMatchingRows(t *testing.T) {
	store := newFakeRowStore()
	store.sheetIDs["ClientView"] = 11
	store.values["ClientView!E1"] = [][]interface{}{{"client@acme.com"}}
	store.values["Meetings!A:Z"] = [][]interface{}{
		meetingSheetHeader,
		{"M1", "Weekly Sync", "lead@example.com", "lead@example.com, client@acme.com"},
		{"M2", "Internal", "lead@example.com", "lead@example.com"},
		{"M3", "Review", "lead@example.com", "Client@Acme.com , other@x.com"},
	}

	filter := NewClientFilter(store, "Meetings", "ClientView", zap.NewNop())
	n, err := filter.Apply(context.Background())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("matched %d rows, want 2", n)
	}

	if len(store.cleared) != 1 || store.cleared[0] != "ClientView!A3:Z" {
		t.Fatalf("cleared ranges = %v, want ClientView!A3:Z", store.cleared)
	}
	if len(store.inserts) != 1 || store.inserts[0].start != 2 || store.inserts[0].end != 4 {
		t.Fatalf("inserts = %+v, want rows [2,4) on the view sheet", store.inserts)
	}
	if len(store.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(store.updates))
	}
	up := store.updates[0]
	if up.rangeA1 != "ClientView!A3:J4" {
		t.Fatalf("update range = %q, want ClientView!A3:J4", up.rangeA1)
	}
	if up.values[0][0] != "M1" || up.values[1][0] != "M3" {
		t.Fatalf("copied rows = %v, want M1 then M3", up.values)
	}
}

func TestClientFilterNoMatchesLeavesViewEmpty(t *testing.T) {
	store := newFakeRowStore()
	store.values["ClientView!E1"] = [][]interface{}{{"nobody@acme.com"}}
	store.values["Meetings!A:Z"] = [][]interface{}{
		meetingSheetHeader,
		{"M1", "Weekly Sync", "lead@example.com", "lead@example.com"},
	}

	filter := NewClientFilter(store, "Meetings", "ClientView", zap.NewNop())
	n, err := filter.Apply(context.Background())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("matched %d rows, want 0", n)
	}
	if len(store.cleared) != 1 {
		t.Fatal("view must still be cleared when nothing matches")
	}
	if len(store.inserts) != 0 || len(store.updates) != 0 {
		t.Fatal("no rows should be inserted or written without matches")
	}
}

func TestClientFilterRequiresSelection(t *testing.T) {
	store := newFakeRowStore()
	store.values["ClientView!E1"] = [][]interface{}{{"  "}}

	filter := NewClientFilter(store, "Meetings", "ClientView", zap.NewNop())
	if _, err := filter.Apply(context.Background()); err == nil {
		t.Fatal("expected error when dropdown cell is empty")
	}
}
