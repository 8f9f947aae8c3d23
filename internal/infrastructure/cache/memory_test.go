package cache

import (
	"testing"
	"time"
)

func TestTryClaimBlocksSecondClaim(t *testing.T) {
	guard := NewProcessingGuard()

	if !guard.TryClaim("M1", time.Minute) {
		t.Fatal("first claim should succeed")
	}
	if guard.TryClaim("M1", time.Minute) {
		t.Fatal("second claim should be blocked")
	}
	if !guard.TryClaim("M2", time.Minute) {
		t.Fatal("unrelated key should be claimable")
	}
}

func TestReleaseAllowsReclaim(t *testing.T) {
	guard := NewProcessingGuard()

	guard.TryClaim("M1", time.Minute)
	guard.Release("M1")
	if !guard.TryClaim("M1", time.Minute) {
		t.Fatal("released key should be claimable again")
	}
}

func TestExpiredClaimIsReclaimable(t *testing.T) {
	guard := NewProcessingGuard()

	guard.TryClaim("M1", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if !guard.TryClaim("M1", time.Minute) {
		t.Fatal("expired claim should be claimable again")
	}
}
