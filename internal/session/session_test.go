package session

import "testing"

// TestSession_AuthTransitions verifies each login attempt sets the auth state it reports.
func TestSession_AuthTransitions(t *testing.T) {
	steps := []struct {
		name   string
		pass   string
		logout bool
		want   bool
	}{
		{name: "wrong first", pass: "guess", want: false},
		{name: "right", pass: "hunter2", want: true},
		{name: "logout", logout: true, want: false},
		{name: "right again", pass: "hunter2", want: true},
		{name: "wrong drops auth", pass: "hunter", want: false},
		{name: "empty", pass: "", want: false},
	}

	s := New("hunter2")
	for _, step := range steps {
		if step.logout {
			s.Logout()
		} else if got := s.Authenticate(step.pass); got != step.want {
			t.Fatalf("%s: Authenticate=%v, want %v", step.name, got, step.want)
		}
		if s.IsAuthenticated() != step.want {
			t.Fatalf("%s: IsAuthenticated=%v, want %v", step.name, s.IsAuthenticated(), step.want)
		}
	}
}

// TestSession_EmptyPasswordNeverMatches verifies an unset password locks everyone out.
func TestSession_EmptyPasswordNeverMatches(t *testing.T) {
	s := New("")
	for _, pass := range []string{"", " ", "x"} {
		if s.Authenticate(pass) {
			t.Fatalf("expected %q to be rejected", pass)
		}
	}
}

// TestSession_Defaults verifies a fresh session replays input and has no consumer.
func TestSession_Defaults(t *testing.T) {
	snap := New("pw").Snapshot()
	want := Snapshot{InputEnabled: true}
	if snap != want {
		t.Fatalf("snapshot=%+v, want %+v", snap, want)
	}
}

// TestSession_SnapshotTracksConsumerLifecycle verifies a bridge consumer attaching,
// opening the data channel and detaching shows up in each snapshot.
func TestSession_SnapshotTracksConsumerLifecycle(t *testing.T) {
	s := New("pw")
	s.Authenticate("pw")

	s.SetConsumer("c-1")
	s.SetTransportRTC(true)
	s.SetInputEnabled(false)
	got := s.Snapshot()
	want := Snapshot{Authenticated: true, ConsumerID: "c-1", TransportRTC: true}
	if got != want {
		t.Fatalf("attached snapshot=%+v, want %+v", got, want)
	}
	if s.InputEnabled() {
		t.Fatalf("expected input replay disabled")
	}

	s.SetTransportRTC(false)
	s.SetConsumer("")
	s.SetInputEnabled(true)
	got = s.Snapshot()
	want = Snapshot{Authenticated: true, InputEnabled: true}
	if got != want {
		t.Fatalf("detached snapshot=%+v, want %+v", got, want)
	}
	if s.Consumer() != "" {
		t.Fatalf("expected consumer cleared, got %q", s.Consumer())
	}
}
