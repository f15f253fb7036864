package gateconf

import "fmt"

// DirectiveError carries a setter validation failure together with the
// directive it came from. The wrapped message is fixed and human-readable;
// hosts display it verbatim at startup and abort the configuration load.
type DirectiveError struct {
	Directive string
	Err       error
}

func (e *DirectiveError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *DirectiveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func directiveError(directive, format string, args ...any) error {
	return &DirectiveError{
		Directive: directive,
		Err:       fmt.Errorf(format, args...),
	}
}
