package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with a *oerror.LocomotionError built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
