package listing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DocumentKey turns a file path into its project-relative key.
// "/proj/meeting-notes/2024/jan.md" under "/proj" -> "meeting-notes/2024/jan"
func DocumentKey(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("relativizing %s: %w", file, err)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.ToSlash(rel), nil
}

// CardURL formats a document key as a site-absolute URL.
func CardURL(key string) string {
	return "/" + strings.TrimPrefix(key, "/")
}

// FeedURL formats a document key as an absolute URL under baseURL.
func FeedURL(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(key, "/")
}
