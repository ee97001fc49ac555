package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"ConfigPath", KeyConfigPath, "sitenav.yaml", ConfigPath("sitenav.yaml")},
		{"BuildID", KeyBuildID, "b-1", BuildID("b-1")},
		{"Location", KeyLocation, "sidebar[4]", Location("sidebar[4]")},
		{"Kind", KeyKind, "duplicate-path", Kind("duplicate-path")},
		{"Severity", KeySeverity, "error", Severity("error")},
		{"Path", KeyPath, "/article/", Path("/article/")},
		{"Addr", KeyAddr, ":9090", Addr(":9090")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if v := Violations(3).Value.Int64(); v != 3 {
		t.Fatalf("Violations: got %d", v)
	}
	if v := Entries(2).Value.Int64(); v != 2 {
		t.Fatalf("Entries: got %d", v)
	}
	if v := DurationMS(1.5).Value.Float64(); v != 1.5 {
		t.Fatalf("DurationMS: got %f", v)
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("nil error should render empty, got %q", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %q", got)
	}
}
