package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code        Code
		operatorMsg string
		unexpected  bool
		detailsOK   bool
	}{
		{code: CodeValidation, operatorMsg: "invalid input", detailsOK: true},
		{code: CodeInputFormat, operatorMsg: "input could not be parsed", detailsOK: true},
		{code: CodeNotFound, operatorMsg: "record not found"},
		{code: CodeInsufficientStock, operatorMsg: "insufficient stock"},
		{code: CodeInternal, operatorMsg: "internal error", unexpected: true},
		{code: CodeDependency, operatorMsg: "storage unavailable", unexpected: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.OperatorMessage != tt.operatorMsg {
			t.Fatalf("code %s expected operator message %q got %q", tt.code, tt.operatorMsg, meta.OperatorMessage)
		}
		if meta.Unexpected != tt.unexpected {
			t.Fatalf("code %s expected unexpected %v got %v", tt.code, tt.unexpected, meta.Unexpected)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if !meta.Unexpected {
		t.Fatalf("expected unknown codes to surface as unexpected")
	}
	if meta.OperatorMessage != "internal error" {
		t.Fatalf("expected internal operator message, got %q", meta.OperatorMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "foo"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeDependency, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeInsufficientStock, "not enough on hand")
	if got := As(err); got == nil || got.Code() != CodeInsufficientStock {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("disk gone")
	err := Wrap(CodeDependency, cause, "db: list products")

	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
	if d.TopMessage == "" {
		t.Fatalf("top message should be populated")
	}
}

func TestDumpNilError(t *testing.T) {
	d := Dump(nil)
	if d.TopMessage != "" || d.Code != "" || d.Chain != nil {
		t.Fatalf("expected zero dump for nil error")
	}
}
