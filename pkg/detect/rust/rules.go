package rust

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var rules = []detect.Rule{
	{Triggers: []string{"tokio"}, Name: "Tokio", Category: detect.CategoryRuntime},
	{Triggers: []string{"async-std"}, Name: "async-std", Category: detect.CategoryRuntime},

	{Triggers: []string{"serde", "serde_json", "serde_yaml"}, Name: "Serde", Category: detect.CategorySerialization, VersionFrom: "serde"},
	{Triggers: []string{"prost"}, Name: "Protobuf", Category: detect.CategorySerialization},

	{Triggers: []string{"diesel"}, Name: "Diesel", Category: detect.CategoryORM},
	{Triggers: []string{"sqlx"}, Name: "SQLx", Category: detect.CategoryORM},
	{Triggers: []string{"sea-orm"}, Name: "SeaORM", Category: detect.CategoryORM},
	{Triggers: []string{"tokio-postgres", "postgres"}, Name: "PostgreSQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"rusqlite"}, Name: "SQLite", Category: detect.CategoryDatabase},
	{Triggers: []string{"mongodb"}, Name: "MongoDB", Category: detect.CategoryDatabase},
	{Triggers: []string{"redis"}, Name: "Redis", Category: detect.CategoryCache},

	{Triggers: []string{"tonic"}, Name: "gRPC", Category: detect.CategoryAPI},
	{Triggers: []string{"async-graphql", "juniper"}, Name: "GraphQL", Category: detect.CategoryAPI},
	{Triggers: []string{"reqwest"}, Name: "Reqwest", Category: detect.CategoryHTTP},
	{Triggers: []string{"hyper"}, Name: "Hyper", Category: detect.CategoryHTTP},
	{Triggers: []string{"rdkafka"}, Name: "Kafka", Category: detect.CategoryMessaging},
	{Triggers: []string{"lapin"}, Name: "RabbitMQ", Category: detect.CategoryMessaging},

	{Triggers: []string{"clap", "structopt"}, Name: "Clap", Category: detect.CategoryCLI},
	{Triggers: []string{"config", "figment"}, Name: "Config", Category: detect.CategoryConfig},
	{Triggers: []string{"tracing", "tracing-subscriber"}, Name: "Tracing", Category: detect.CategoryObservability, VersionFrom: "tracing"},
	{Triggers: []string{"log", "env_logger"}, Name: "Logging", Category: detect.CategoryLogging},
	{Triggers: []string{"anyhow", "thiserror"}, Name: "Error Handling", Category: detect.CategoryValidation},
	{Triggers: []string{"validator"}, Name: "Validator", Category: detect.CategoryValidation},

	{Triggers: []string{"criterion"}, Name: "Criterion", Category: detect.CategoryTesting},
	{Triggers: []string{"proptest", "quickcheck"}, Name: "Property Testing", Category: detect.CategoryTesting},
	{Triggers: []string{"mockall"}, Name: "Mockall", Category: detect.CategoryTesting},

	{Triggers: []string{"askama", "tera", "handlebars"}, Name: "Templating", Category: detect.CategoryTemplating},
	{Triggers: []string{"jsonwebtoken"}, Name: "JWT", Category: detect.CategoryAuth},
	{Triggers: []string{"argon2", "bcrypt"}, Name: "Password Hashing", Category: detect.CategoryAuth},
}

// noise: ubiquitous low-level crates pulled by nearly every dependency tree.
var noise = detect.NewNoiseList(
	[]string{
		"cfg-if",
		"lazy_static",
		"once_cell",
		"libc",
		"autocfg",
		"bitflags",
		"itoa",
		"ryu",
		"memchr",
		"pin-project-lite",
		"futures",
		"futures-util",
		"bytes",
		"rand",
		"chrono",
		"uuid",
		"regex",
	},
	nil,
)

func ruleSet() detect.RuleSet {
	return detect.RuleSet{
		Rules:         rules,
		Noise:         noise,
		FrameworkKeys: frameworkKeys,
	}
}

// ClassifyStack applies the Rust rule table to the dependency map.
func (a *Adapter) ClassifyStack(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.DetectedStack {
	return ruleSet().Classify(manifest, facts)
}
