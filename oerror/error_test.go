package oerror

import "testing"

func TestNewFormatsArguments(t *testing.T) {
	err := New("missing %s collaborator", "mover")
	if err.Error() != "missing mover collaborator" {
		t.Fatalf("expected formatted message, got %q", err.Error())
	}
}

func TestNewKeepsPercentWithoutArguments(t *testing.T) {
	err := New("100% broken")
	if err.Error() != "100% broken" {
		t.Fatalf("expected message to be kept verbatim, got %q", err.Error())
	}
}
