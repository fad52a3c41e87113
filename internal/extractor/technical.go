package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

var (
	timingPattern   = regexp.MustCompile(`(?i)\b(load(?:s|ing)?(?:\s+time)?|page load|response(?:\s+time)?|respond(?:s)?|latency|render(?:s|ing)?)\b[^.\n]{0,40}?(\d+(?:\.\d+)?)\s*(ms|milliseconds?|s|secs?|seconds?)\b`)
	capacityPattern = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(k|m|thousand|million)?\+?\s+(concurrent users|simultaneous users|active users|users|requests per second|requests/s|req/s|rps|concurrent connections|connections|transactions per second|tps)\b`)

	criticalPerfWords  = helpers.NewKeywordMatcher("high-performance", "high performance", "low latency", "low-latency", "sub-second", "instant", "real-time performance", "performance-critical", "performance critical")
	enterpriseWords    = helpers.NewKeywordMatcher("enterprise", "enterprise-grade", "multi-tenant", "multi-region", "global scale", "horizontally scalable", "millions of users")
	securityMechanisms = helpers.NewExactMatcher("oauth", "oauth2", "jwt", "ssl", "tls", "https", "mfa", "2fa", "sso", "saml", "encryption", "rbac", "bcrypt", "ldap")
	complianceRegimes  = helpers.NewExactMatcher("gdpr", "hipaa", "pci", "pci-dss", "soc2", "soc 2")
)

var capacityKeys = map[string]string{
	"concurrent users":        models.KeyConcurrentUsers,
	"simultaneous users":      models.KeyConcurrentUsers,
	"active users":            "active_users",
	"users":                   "users",
	"requests per second":     models.KeyRequestsPerSecond,
	"requests/s":              models.KeyRequestsPerSecond,
	"req/s":                   models.KeyRequestsPerSecond,
	"rps":                     models.KeyRequestsPerSecond,
	"concurrent connections":  "concurrent_connections",
	"connections":             "concurrent_connections",
	"transactions per second": "transactions_per_second",
	"tps":                     "transactions_per_second",
}

func extractTechnical(text string) models.TechnicalRequirements {
	return models.TechnicalRequirements{
		Performance: extractPerformance(text),
		Security:    extractSecurity(text),
		Scalability: extractScalability(text),
	}
}

// extractPerformance records the first load-time and response-time
// thresholds. Any threshold at or under one second, or explicit
// performance-critical wording, marks the tier critical.
func extractPerformance(text string) map[string]string {
	perf := map[string]string{}
	critical := false

	for _, m := range timingPattern.FindAllStringSubmatch(text, -1) {
		key := models.KeyResponseTime
		if strings.Contains(strings.ToLower(m[1]), "load") || strings.HasPrefix(strings.ToLower(m[1]), "render") {
			key = models.KeyLoadTime
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		ms := value
		unit := "ms"
		if !strings.HasPrefix(strings.ToLower(m[3]), "m") {
			ms = value * 1000
			unit = "s"
		}
		if ms <= 1000 {
			critical = true
		}
		if _, ok := perf[key]; !ok {
			perf[key] = m[2] + unit
		}
	}

	if criticalPerfWords.MatchString(text) {
		critical = true
	}
	if critical {
		perf[models.KeyPerformanceTier] = models.TierCritical
	}

	if len(perf) == 0 {
		return nil
	}
	return perf
}

// extractSecurity maps every named mechanism to "required" and joins the
// compliance regimes. Compliance or two mechanisms make the level high.
func extractSecurity(text string) map[string]string {
	sec := map[string]string{}
	mechanisms := 0
	for _, m := range securityMechanisms.FindAll(text) {
		if _, ok := sec[m]; !ok {
			sec[m] = "required"
			mechanisms++
		}
	}

	compliance := newStringSet(10)
	for _, c := range complianceRegimes.FindAll(text) {
		compliance.add(strings.ReplaceAll(c, " ", ""))
	}
	if len(compliance.items) > 0 {
		sec[models.KeyCompliance] = strings.Join(compliance.items, ",")
	}

	switch {
	case len(compliance.items) > 0 || mechanisms >= 2:
		sec[models.KeySecurityLevel] = string(models.LevelHigh)
	case mechanisms == 1:
		sec[models.KeySecurityLevel] = string(models.LevelMedium)
	}

	if len(sec) == 0 {
		return nil
	}
	return sec
}

// extractScalability records capacity figures. Ten thousand users, a
// thousand requests per second, or enterprise wording make the tier
// enterprise.
func extractScalability(text string) map[string]string {
	scale := map[string]string{}
	enterprise := enterpriseWords.MatchString(text)

	for _, m := range capacityPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		switch strings.ToLower(m[2]) {
		case "k", "thousand":
			n *= 1000
		case "m", "million":
			n *= 1000000
		}
		key := capacityKeys[strings.ToLower(m[3])]
		if _, ok := scale[key]; !ok {
			scale[key] = strconv.FormatFloat(n, 'f', -1, 64)
		}
		switch key {
		case models.KeyRequestsPerSecond, "transactions_per_second":
			enterprise = enterprise || n >= 1000
		default:
			enterprise = enterprise || n >= 10000
		}
	}

	if enterprise {
		scale[models.KeyScalabilityTier] = models.TierEnterprise
	}

	if len(scale) == 0 {
		return nil
	}
	return scale
}
