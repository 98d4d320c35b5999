// Package expand resolves environment-variable references in configured
// path strings ($VAR and ${VAR}) before they reach the scanner.
package expand

import (
	"os"

	"github.com/zhubert/pfp/internal/errors"
)

// Expand replaces $VAR and ${VAR} references in s with the values of the
// corresponding environment variables. A reference to an unset variable is
// an error naming the variable.
func Expand(s string) (string, error) {
	var missing []string
	expanded := os.Expand(s, func(name string) string {
		val, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ""
		}
		return val
	})
	if len(missing) > 0 {
		return "", errors.UndefinedVar(missing[0])
	}
	return expanded, nil
}

// All expands every path in paths, failing on the first unresolvable one.
func All(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		expanded, err := Expand(p)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}
