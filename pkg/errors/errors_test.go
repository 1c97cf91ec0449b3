package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeManifestMalformed, "invalid JSON in %s", "package.json")

	if err.Code != ErrCodeManifestMalformed {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeManifestMalformed)
	}
	if err.Message != "invalid JSON in package.json" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeNoEcosystem, "no recognized manifest"),
			want: "NO_ECOSYSTEM: no recognized manifest",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeManifestMalformed, stderrors.New("unexpected EOF"), "parsing pom.xml"),
			want: "MANIFEST_MALFORMED: parsing pom.xml: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeManifestMalformed, cause, "parsing failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnsupportedEcosystem, "no adapter for ruby")

	if !Is(err, ErrCodeUnsupportedEcosystem) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNoEcosystem) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNoEcosystem) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeManifestNotFound, "go.mod missing")
	outer := fmt.Errorf("analyzing project: %w", inner)

	if !Is(outer, ErrCodeManifestNotFound) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeManifestNotFound {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeManifestNotFound)
	}
}

func TestUserMessage(t *testing.T) {
	structured := New(ErrCodeInvalidPath, "path does not exist: /tmp/nope")
	if got := UserMessage(structured); got != "path does not exist: /tmp/nope" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}
