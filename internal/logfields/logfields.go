package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeyBuildID    = "build_id"
	KeyLocation   = "location"
	KeyKind       = "kind"
	KeySeverity   = "severity"
	KeyViolations = "violations"
	KeyWarnings   = "warnings"
	KeyEntries    = "entries"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyAddr       = "addr"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Location(loc string) slog.Attr   { return slog.String(KeyLocation, loc) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Severity(s string) slog.Attr     { return slog.String(KeySeverity, s) }
func Violations(n int) slog.Attr      { return slog.Int(KeyViolations, n) }
func Warnings(n int) slog.Attr        { return slog.Int(KeyWarnings, n) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
