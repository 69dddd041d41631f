package upstream

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// normalizeVersion strips a leading "v" and returns the canonical semver
// string, so "v0.3" becomes "0.3.0".
func normalizeVersion(raw string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
