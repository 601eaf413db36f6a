package jbovlaste

import (
	"fmt"
	"os"
	"strings"

	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// ReadCookie loads the jbovlaste session cookie from a single-line secret
// file. The content must look like "jbovlastessionid=ADSFASFADSF".
func ReadCookie(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("jbovlaste: read cookie %s: %w", path, err)
	}

	cookie := strings.TrimSpace(string(raw))
	if cookie == "" {
		return "", fmt.Errorf("jbovlaste: cookie %s: %w", path, domain.NewValidationError("cookie", "file is empty"))
	}
	if strings.ContainsAny(cookie, "\r\n") {
		return "", fmt.Errorf("jbovlaste: cookie %s: %w", path, domain.NewValidationError("cookie", "must be a single line"))
	}

	name, value, ok := strings.Cut(cookie, "=")
	if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("jbovlaste: cookie %s: %w", path, domain.NewValidationError("cookie", "must look like name=value"))
	}

	return cookie, nil
}
