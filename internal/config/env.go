package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// envFiles are read in order; later files override earlier ones.
var envFiles = []string{".env", ".env.local"}

// envLookup resolves a variable name. The process environment wins over
// values read from env files.
type envLookup func(name string) (string, bool)

// readEnvFiles reads the .env files next to the configuration file. The
// process environment is not modified, so every call sees the files' current
// contents. It returns the merged variables and the files that were read.
func readEnvFiles(configPath string) (map[string]string, []string) {
	dir := filepath.Dir(configPath)
	vars := make(map[string]string)
	var loaded []string
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		fileVars, err := godotenv.Read(p)
		if err != nil {
			continue
		}
		for k, v := range fileVars {
			vars[k] = v
		}
		loaded = append(loaded, p)
	}
	return vars, loaded
}

func lookupWith(fileVars map[string]string) envLookup {
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := fileVars[name]
		return v, ok
	}
}

// expandEnv replaces ${NAME} references using lookup; unset names expand to
// "". "$$" is a literal "$", and any other "$" is kept as written.
func expandEnv(s string, lookup envLookup) string {
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '$':
			b.WriteByte('$')
			i++
		case '{':
			end := strings.IndexByte(s[i+2:], '}')
			name := ""
			if end >= 0 {
				name = s[i+2 : i+2+end]
			}
			if !isEnvName(name) {
				b.WriteByte('$')
				continue
			}
			v, _ := lookup(name)
			b.WriteString(v)
			i += 2 + end
		default:
			b.WriteByte('$')
		}
	}
	return b.String()
}

func isEnvName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
