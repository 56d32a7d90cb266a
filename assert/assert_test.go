package assert

import (
	"testing"

	"github.com/oomph-ac/locomotion/oerror"
)

func TestIsTrue(t *testing.T) {
	IsTrue(true, "never raised")

	defer func() {
		r := recover()
		err, ok := r.(*oerror.LocomotionError)
		if !ok {
			t.Fatalf("expected *oerror.LocomotionError panic, got %T", r)
		}
		if err.Error() != "step 3 failed" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}()
	IsTrue(false, "step %d failed", 3)
}
