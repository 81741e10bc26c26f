package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/napi-runtime/napi"
)

func TestErrorFormatting(t *testing.T) {
	err := New(PhaseCall, KindStatus).
		Addon("image.node").
		Symbol("decode").
		Status(napi.PendingException).
		Detail("export threw").
		Build()

	msg := err.Error()
	for _, want := range []string{"[call]", "status", "image.node", "decode", "napi_pending_exception", "export threw"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := Load("dlopen failed", nil)
	if !stderrors.Is(err, &Error{Phase: PhaseLoad, Kind: KindNotFound}) {
		t.Error("Is by phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseCall, Kind: KindNotFound}) {
		t.Error("Is across phases")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Registration("a.node", cause)
	if !stderrors.Is(err, cause) {
		t.Error("cause not unwrapped")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Error("cause not rendered")
	}
}

func TestFromStatus(t *testing.T) {
	err := FromStatus(PhaseDispatch, napi.QueueFull)
	if err.Status != napi.QueueFull || err.Kind != KindStatus {
		t.Fatalf("%+v", err)
	}
	if !strings.Contains(err.Error(), "queue is full") {
		t.Errorf("message %q", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if got := BadSymbol("x.node", "napi_register_module_v1"); got.Kind != KindBadSymbol || got.Symbol == "" {
		t.Error("BadSymbol")
	}
	if got := NotFound(PhaseCall, "export", "add"); !strings.Contains(got.Error(), `export "add" not found`) {
		t.Errorf("NotFound: %q", got.Error())
	}
	if got := Closed(PhaseTeardown, "environment"); !strings.Contains(got.Error(), "environment is closed") {
		t.Error("Closed")
	}
}
