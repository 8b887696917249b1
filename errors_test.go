package fishrambeta

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	err := Errorf(Unsupported, "command %q", "int")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected %v to be an unsupported-construct error", err)
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected %v not to match malformed input", err)
	}
	if err.Error() != `unsupported construct: command "int"` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrappedKind(t *testing.T) {
	err := fmt.Errorf("parsing formula: %w", Errorf(UnboundVariable, "x"))
	if !errors.Is(err, ErrUnboundVariable) {
		t.Errorf("expected wrapped error to match")
	}
	if KindOf(err) != UnboundVariable {
		t.Errorf("expected kind to be unbound variable, is %v", KindOf(err))
	}
	if KindOf(errors.New("other")) != NoError {
		t.Errorf("expected foreign error to have no kind")
	}
}
