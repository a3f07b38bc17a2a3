package logging

import (
	"log/slog"
	"regexp"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldSport, "soccer")}, "game-day-companion", "dev")
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(attrs))
	}
	if attrs[1].Key != FieldService || attrs[1].Value.String() != "game-day-companion" {
		t.Fatalf("expected service attr after existing ones, got %+v", attrs[1])
	}
	if attrs[2].Key != FieldVersion || attrs[2].Value.String() != "dev" {
		t.Fatalf("expected version attr, got %+v", attrs[2])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	if attrs := WithCommon(nil, "", ""); len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %+v", attrs)
	}
	if attrs := WithCommon(nil, "", "v2"); len(attrs) != 1 || attrs[0].Key != FieldVersion {
		t.Fatalf("expected only version, got %+v", attrs)
	}
}

func TestFieldKeysAreSnakeCaseAndUnique(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldProvider, FieldDomain, FieldKey, FieldGeneration,
		FieldSport, FieldEmail, FieldDate, FieldCount, FieldDurationMS, FieldStatusCode, FieldRequestID,
	}
	pattern := regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)
	seen := map[string]bool{}
	for _, k := range keys {
		if !pattern.MatchString(k) {
			t.Fatalf("field key %q is not snake_case", k)
		}
		if seen[k] {
			t.Fatalf("duplicate field key %q", k)
		}
		seen[k] = true
	}
}
