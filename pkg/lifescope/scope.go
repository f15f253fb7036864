// Package lifescope provides configuration-lifetime ownership scopes.
//
// A Scope collects cleanup callbacks registered at record-creation time and
// runs them exactly once, in reverse registration order, when the scope is
// closed. It replaces external pool cleanup lists with an owner whose
// teardown is explicit in the call chain: the host opens one scope per
// configuration load and closes it when that configuration generation is
// discarded, on both normal and abnormal teardown paths.
package lifescope

// Scope owns resources acquired during one configuration lifetime.
//
// Scopes are not safe for concurrent use; like the records they own, they
// live entirely within the host's serial configuration-loading phase.
type Scope struct {
	cleanups []func()
	closed   bool
}

func New() *Scope {
	return &Scope{}
}

// Child opens a scope that is closed automatically when s is closed. The
// child can still be closed earlier on its own.
func (s *Scope) Child() *Scope {
	c := New()
	s.OnCleanup(c.Close)
	return c
}

// OnCleanup registers fn to run when the scope closes. Registration on a
// closed scope runs fn immediately, so a late-created record is still
// released deterministically.
func (s *Scope) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if s.closed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Close runs all registered cleanups in LIFO order. Closing an already
// closed scope is a no-op.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.cleanups = nil
}
