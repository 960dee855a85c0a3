package selection

import "testing"

func TestStatusExpiresAfterFullCountdown(t *testing.T) {
	s := newTestState("Safari")
	s.RecordOpened("Safari")
	for i := 0; i < StatusTicks-1; i++ {
		s.TickStatus()
	}
	if got := s.Status(); got.Kind != StatusOpened || got.Name != "Safari" {
		t.Fatalf("expected status still visible one tick early, got %+v", got)
	}
	s.TickStatus()
	if got := s.Status(); got.Kind != StatusNone {
		t.Fatalf("expected status cleared, got %+v", got)
	}
}

func TestTickStatusNeverGoesNegative(t *testing.T) {
	s := newTestState("Safari")
	s.RecordKilled("Safari")
	for i := 0; i < StatusTicks*2; i++ {
		s.TickStatus()
	}
	if got := s.Status(); got.Kind != StatusNone {
		t.Fatalf("expected cleared status, got %+v", got)
	}
	s.TickStatus()
	if got := s.Status(); got.Kind != StatusNone {
		t.Fatalf("expected tick on idle status to stay clear, got %+v", got)
	}
}

func TestRecordRestartsCountdown(t *testing.T) {
	s := newTestState("Safari", "Mail")
	s.RecordOpened("Safari")
	for i := 0; i < StatusTicks-1; i++ {
		s.TickStatus()
	}
	s.RecordKilled("Mail")
	if got := s.Status(); got.Kind != StatusKilled || got.Name != "Mail" {
		t.Fatalf("expected killed status for Mail, got %+v", got)
	}
	s.TickStatus()
	if got := s.Status(); got.Kind != StatusKilled {
		t.Fatalf("expected fresh countdown to keep status visible, got %+v", got)
	}
	for i := 0; i < StatusTicks-1; i++ {
		s.TickStatus()
	}
	if got := s.Status(); got.Kind != StatusNone {
		t.Fatalf("expected status cleared after full countdown, got %+v", got)
	}
}
