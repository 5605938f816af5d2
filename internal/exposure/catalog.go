// Package exposure implements the exposure probing engine: it expands a domain
// into candidate URLs for known-sensitive paths, checks each candidate
// concurrently under a per-probe deadline and reports the ones that answer.
package exposure

import (
	"exposure/pkg/domain"
	"slices"
)

// Pattern describes one known-sensitive endpoint.
type Pattern struct {
	// Path always begins with "/".
	Path        string          `json:"path"`
	Description string          `json:"description"`
	Severity    domain.Severity `json:"severity"`
}

var catalog = []Pattern{ //nolint: gochecknoglobals
	{Path: "/.git/config", Description: "Publicly exposed .git/config file", Severity: domain.SeverityHigh},
	{Path: "/.env", Description: "Publicly exposed .env file", Severity: domain.SeverityCritical},
	{Path: "/.aws/credentials", Description: "Exposed AWS credentials file", Severity: domain.SeverityCritical},
	{Path: "/wp-config.php", Description: "Exposed WordPress configuration file", Severity: domain.SeverityHigh},
	{Path: "/_debugbar/open", Description: "Laravel Debugbar open handler", Severity: domain.SeverityMedium},
	{Path: "/.hg/hgrc", Description: "Publicly exposed Mercurial config", Severity: domain.SeverityHigh},
	{Path: "/server-status", Description: "Apache server-status page exposed", Severity: domain.SeverityMedium},
	{Path: "/phpinfo.php", Description: "PHP info file exposed", Severity: domain.SeverityMedium},
	{Path: "/.DS_Store", Description: "macOS .DS_Store file exposed", Severity: domain.SeverityLow},
	{Path: "/.idea/workspace.xml", Description: "JetBrains IDE workspace file exposed", Severity: domain.SeverityLow},
}

// Catalog returns a copy of the built-in pattern catalog in its fixed order.
func Catalog() []Pattern {
	return slices.Clone(catalog)
}
