package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with an *oerror.OomphError if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// NotNil panics if v is nil. It is used for collaborators that must be present before the first tick.
func NotNil(v any, name string) {
	IsTrue(v != nil, "%s should be non-nil", name)
}
