package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		publicMsg string
		retryable bool
	}{
		{code: CodeSourceMissing, publicMsg: "source file not found"},
		{code: CodeSourceUnreachable, publicMsg: "source endpoint unreachable", retryable: true},
		{code: CodeBadRecord, publicMsg: "record could not be coerced to the canonical schema"},
		{code: CodePersistence, publicMsg: "destination store write failed", retryable: true},
		{code: CodeInternal, publicMsg: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal error" {
		t.Fatalf("expected internal metadata, got %q", meta.PublicMessage)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeSourceUnreachable, cause, "fetching products")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if err.Code() != CodeSourceUnreachable {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Error() != "SOURCE_UNREACHABLE: fetching products" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != "" {
		t.Fatalf("expected empty code for nil error, got %s", got)
	}
	if got := CodeOf(stdErrors.New("plain")); got != CodeInternal {
		t.Fatalf("expected internal code for plain error, got %s", got)
	}
	wrapped := Wrap(CodePersistence, stdErrors.New("disk full"), "writing master_sales")
	outer := fmt.Errorf("load stage: %w", wrapped)
	if got := CodeOf(outer); got != CodePersistence {
		t.Fatalf("expected persistence code, got %s", got)
	}
}
