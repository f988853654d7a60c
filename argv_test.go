package vtcore

import "testing"

func TestArgvRegistryCompletesValue(t *testing.T) {
	var gotName string
	var gotValue []byte
	reg := NewArgvRegistry(func(name string, value []byte) {
		gotName, gotValue = name, value
	}, nil)

	if err := reg.Open("username"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := reg.Append("username", []byte("alice")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := reg.Close("username"); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if gotName != "username" || string(gotValue) != "alice" {
		t.Fatalf("got (%q,%q), want (username,alice)", gotName, gotValue)
	}
}

func TestArgvRegistryRejectsUnknownName(t *testing.T) {
	reg := NewArgvRegistry(nil, nil)
	err := reg.Open("shell-command")
	if err == nil {
		t.Fatalf("expected an error opening a non-whitelisted argv name")
	}
}

func TestArgvRegistryRejectsDoubleOpen(t *testing.T) {
	reg := NewArgvRegistry(nil, nil)
	if err := reg.Open("password"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	err := reg.Open("password")
	terr, ok := err.(*TerminalError)
	if !ok || terr.Kind != ErrStreamConflict {
		t.Fatalf("expected ErrStreamConflict on double-open, got %v", err)
	}
}

func TestArgvRegistryEnforcesSizeLimit(t *testing.T) {
	reg := NewArgvRegistry(nil, nil)
	reg.Open("password")
	big := make([]byte, ArgvMaxSize+1)
	err := reg.Append("password", big)
	if err == nil {
		t.Fatalf("expected an error exceeding ArgvMaxSize")
	}
}
