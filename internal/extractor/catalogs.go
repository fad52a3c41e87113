package extractor

import (
	"workflow-planner/internal/helpers"
	"workflow-planner/internal/models"
)

type tagMatcher struct {
	tag     string
	matcher helpers.KeywordMatcher
}

var domainMatchers = []tagMatcher{
	{models.DomainFrontend, helpers.NewKeywordMatcher(
		"ui", "ux", "user interface", "frontend", "front-end", "react", "vue", "angular", "svelte",
		"next.js", "component", "dashboard", "responsive", "css", "html", "layout", "landing page",
		"web app", "form", "button", "chart", "design system", "theme", "animation", "browser",
	)},
	{models.DomainBackend, helpers.NewKeywordMatcher(
		"api", "rest", "graphql", "backend", "back-end", "server", "database", "endpoint",
		"microservice", "postgresql", "postgres", "mysql", "mongodb", "sql", "crud", "queue",
		"grpc", "webhook", "business logic",
	)},
	{models.DomainSecurity, helpers.NewKeywordMatcher(
		"security", "authentication", "authorization", "oauth", "jwt", "encryption", "ssl", "tls",
		"compliance", "gdpr", "hipaa", "pci", "permission", "rbac", "vulnerability", "audit",
		"mfa", "2fa", "access control",
	)},
	{models.DomainInfrastructure, helpers.NewKeywordMatcher(
		"deploy", "deployment", "docker", "kubernetes", "k8s", "ci/cd", "terraform", "aws", "azure",
		"gcp", "cloud", "infrastructure", "monitoring", "devops", "helm", "serverless",
		"load balancer", "cdn", "observability",
	)},
	{models.DomainMobile, helpers.NewKeywordMatcher(
		"mobile", "ios", "android", "react native", "flutter", "tablet", "app store", "play store",
	)},
}

var patternMatchers = []tagMatcher{
	{models.PatternUIComponent, helpers.NewKeywordMatcher(
		"component", "widget", "button", "form", "modal", "chart", "dashboard", "ui", "card",
		"navbar", "sidebar", "carousel", "dropdown",
	)},
	{models.PatternAPI, helpers.NewKeywordMatcher("api", "endpoint", "rest", "graphql", "webhook", "grpc")},
	{models.PatternDatabase, helpers.NewKeywordMatcher(
		"database", "db", "postgresql", "postgres", "mysql", "mongodb", "sqlite", "sql", "schema",
		"redis", "data model", "persistence",
	)},
	{models.PatternAuthentication, helpers.NewKeywordMatcher(
		"authentication", "authenticate", "login", "log in", "sign in", "sign-in", "signup",
		"sign up", "oauth", "jwt", "sso", "auth", "password",
	)},
	{models.PatternRealtime, helpers.NewKeywordMatcher(
		"real-time", "realtime", "websocket", "live update", "live data", "streaming",
		"push notification", "pub/sub", "live chat",
	)},
	{models.PatternResponsive, helpers.NewKeywordMatcher(
		"responsive", "mobile-friendly", "mobile friendly", "breakpoint", "adaptive layout",
		"mobile-first", "cross-device",
	)},
	{models.PatternTesting, helpers.NewKeywordMatcher(
		"test", "testing", "qa", "coverage", "e2e", "end-to-end", "unit test", "tdd",
	)},
	{models.PatternDeployment, helpers.NewKeywordMatcher(
		"deploy", "deployment", "ci/cd", "docker", "kubernetes", "k8s", "release", "hosting",
		"terraform", "helm",
	)},
	{models.PatternPerformance, helpers.NewKeywordMatcher(
		"performance", "fast", "latency", "load time", "response time", "throughput", "optimize",
		"optimise", "optimization", "cache", "caching", "scalability",
	)},
	{models.PatternSecurity, helpers.NewKeywordMatcher(
		"security", "secure", "encryption", "encrypt", "gdpr", "hipaa", "compliance",
		"vulnerability", "permission", "rbac", "audit", "xss", "csrf",
	)},
}

// uiNouns are components recognised on their own.
var uiNouns = helpers.NewKeywordMatcher(
	"dashboard", "chart", "form", "modal", "navbar", "sidebar", "calendar", "carousel",
	"data table", "search bar", "notification center", "file uploader", "date picker",
)

// componentKinds are suffixes turning the preceding word into a component name.
var componentKinds = []string{
	"component", "service", "module", "widget", "panel", "dashboard", "chart", "form", "modal",
	"gateway", "handler", "worker", "engine", "controller", "library",
}

// knownIntegrations are named external systems.
var knownIntegrations = helpers.NewExactMatcher(
	"stripe", "paypal", "braintree", "twilio", "sendgrid", "mailchimp", "mailgun", "aws", "s3",
	"azure", "gcp", "firebase", "auth0", "okta", "salesforce", "hubspot", "slack", "github",
	"gitlab", "google analytics", "google maps", "mapbox", "facebook", "twitter", "shopify",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka", "rabbitmq", "openai",
	"segment", "mixpanel", "jira", "zendesk", "intercom", "plaid", "docusign", "zoom",
)

// genericIntegrationWords are never integrations by themselves.
var genericIntegrationWords = map[string]bool{
	"rest": true, "graphql": true, "public": true, "internal": true, "external": true,
	"third-party": true, "web": true, "http": true, "own": true, "new": true, "custom": true,
	"database": true, "system": true, "backend": true, "frontend": true, "an": true, "the": true,
	"a": true, "our": true, "their": true, "your": true, "existing": true, "native": true,
	"open": true, "private": true, "secure": true, "simple": true, "json": true, "crud": true,
}

// knownRoles are human-role nouns; aliases collapse onto one spelling.
var knownRoles = helpers.NewKeywordMatcher(
	"admin", "administrator", "customer", "viewer", "editor", "manager", "moderator", "guest",
	"member", "owner", "operator", "developer", "analyst", "author", "subscriber", "vendor",
	"seller", "buyer", "student", "teacher", "instructor", "patient", "doctor", "employee",
	"reviewer", "approver", "contributor", "visitor", "support agent",
)

var roleAliases = map[string]string{
	"administrator":  "admin",
	"administrators": "admin",
	"admins":         "admin",
}

// stopwords are rejected as the leading word of a component or page name.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true, "with": true,
	"each": true, "new": true, "our": true, "this": true, "that": true, "your": true,
	"their": true, "any": true, "all": true, "every": true, "some": true, "its": true,
	"for": true, "to": true, "in": true, "on": true, "by": true, "from": true, "as": true,
	"is": true, "be": true, "are": true, "it": true, "main": true, "other": true, "one": true,
	"multiple": true, "various": true, "separate": true, "single": true, "web": true, "load": true,
}

// testabilityVerbs mark a criterion as observable.
var testabilityVerbs = helpers.NewKeywordMatcher(
	"can", "should", "display", "displays", "show", "shows", "click", "clicks", "return",
	"returns", "respond", "responds", "load", "loads", "validate", "validates", "redirect",
	"redirects", "submit", "submits", "receive", "receives", "save", "saves", "send", "sends",
	"create", "creates", "update", "updates", "delete", "deletes", "navigate", "navigates",
	"see", "sees", "within", "log in", "logs in",
)

var (
	highPriorityWords = helpers.NewKeywordMatcher(
		"critical", "must", "must-have", "must have", "high priority", "p0", "p1", "essential",
		"core", "required", "mandatory",
	)
	lowPriorityWords = helpers.NewKeywordMatcher(
		"nice to have", "nice-to-have", "optional", "low priority", "could", "p3", "future",
		"stretch", "later",
	)
	highComplexityWords = helpers.NewKeywordMatcher(
		"complex", "integration", "integrate", "real-time", "realtime", "security", "migration",
		"distributed", "machine learning", "payment", "sync", "synchronization", "scalable",
		"encryption", "workflow engine", "recommendation",
	)
	lowComplexityWords = helpers.NewKeywordMatcher(
		"simple", "basic", "static", "display", "list", "view", "read-only", "about page",
	)
)

// classifyPriority ranks a feature line by its wording.
func classifyPriority(line string) models.Priority {
	switch {
	case highPriorityWords.MatchString(line):
		return models.PriorityHigh
	case lowPriorityWords.MatchString(line):
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

// classifyComplexity estimates a feature's complexity by its wording.
func classifyComplexity(line string) models.Level {
	switch {
	case highComplexityWords.MatchString(line):
		return models.LevelHigh
	case lowComplexityWords.MatchString(line):
		return models.LevelLow
	default:
		return models.LevelMedium
	}
}
