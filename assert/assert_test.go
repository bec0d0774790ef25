package assert

import (
	"errors"
	"testing"

	"github.com/oomph-ac/locomotion/oerror"
)

func TestIsTruePanicsWithOomphError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %v", r)
		}
		var oErr *oerror.OomphError
		if !errors.As(err, &oErr) {
			t.Fatalf("expected *oerror.OomphError, got %T", err)
		}
		if oErr.Error() != "mover should be non-nil" {
			t.Fatalf("unexpected message %q", oErr.Error())
		}
	}()
	NotNil(nil, "mover")
}

func TestIsTrueDoesNotPanic(t *testing.T) {
	IsTrue(true, "never shown")
	NotNil(struct{}{}, "value")
}
