package golang

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var rules = []detect.Rule{
	{Triggers: []string{"gorm.io/gorm"}, Name: "GORM", Category: detect.CategoryORM},
	{Triggers: []string{"github.com/jmoiron/sqlx"}, Name: "sqlx", Category: detect.CategoryORM},
	{Triggers: []string{"entgo.io/ent"}, Name: "Ent", Category: detect.CategoryORM},
	{Triggers: []string{"github.com/jackc/pgx", "github.com/lib/pq"}, Name: "PostgreSQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"github.com/go-sql-driver/mysql"}, Name: "MySQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"github.com/mattn/go-sqlite3", "modernc.org/sqlite"}, Name: "SQLite", Category: detect.CategoryDatabase},
	{Triggers: []string{"go.mongodb.org/mongo-driver"}, Name: "MongoDB", Category: detect.CategoryDatabase},
	{Triggers: []string{"github.com/redis/go-redis", "github.com/go-redis/redis"}, Name: "Redis", Category: detect.CategoryCache},
	{Triggers: []string{"github.com/pressly/goose", "github.com/golang-migrate/migrate"}, Name: "Migrations", Category: detect.CategoryDatabase},

	{Triggers: []string{"google.golang.org/grpc"}, Name: "gRPC", Category: detect.CategoryAPI},
	{Triggers: []string{"google.golang.org/protobuf", "github.com/golang/protobuf"}, Name: "Protobuf", Category: detect.CategorySerialization, VersionFrom: "google.golang.org/protobuf"},
	{Triggers: []string{"github.com/99designs/gqlgen", "github.com/graphql-go/graphql"}, Name: "GraphQL", Category: detect.CategoryAPI},
	{Triggers: []string{"github.com/gorilla/websocket", "nhooyr.io/websocket"}, Name: "WebSocket", Category: detect.CategoryMessaging},
	{Triggers: []string{"github.com/nats-io/nats.go"}, Name: "NATS", Category: detect.CategoryMessaging},
	{Triggers: []string{"github.com/segmentio/kafka-go", "github.com/confluentinc/confluent-kafka-go"}, Name: "Kafka", Category: detect.CategoryMessaging},

	{Triggers: []string{"github.com/spf13/cobra"}, Name: "Cobra", Category: detect.CategoryCLI},
	{Triggers: []string{"github.com/urfave/cli"}, Name: "urfave/cli", Category: detect.CategoryCLI},
	{Triggers: []string{"github.com/spf13/viper"}, Name: "Viper", Category: detect.CategoryConfig},
	{Triggers: []string{"github.com/kelseyhightower/envconfig", "github.com/caarlos0/env"}, Name: "Env Config", Category: detect.CategoryConfig},
	{Triggers: []string{"gopkg.in/yaml.v3", "gopkg.in/yaml.v2"}, Name: "YAML", Category: detect.CategorySerialization},

	{Triggers: []string{"go.uber.org/zap"}, Name: "Zap", Category: detect.CategoryLogging},
	{Triggers: []string{"github.com/sirupsen/logrus"}, Name: "Logrus", Category: detect.CategoryLogging},
	{Triggers: []string{"github.com/rs/zerolog"}, Name: "Zerolog", Category: detect.CategoryLogging},
	{Triggers: []string{"github.com/charmbracelet/log"}, Name: "Charm Log", Category: detect.CategoryLogging},
	{Triggers: []string{"go.opentelemetry.io/otel"}, Name: "OpenTelemetry", Category: detect.CategoryObservability},
	{Triggers: []string{"github.com/prometheus/client_golang"}, Name: "Prometheus", Category: detect.CategoryObservability},

	{Triggers: []string{"github.com/golang-jwt/jwt", "github.com/dgrijalva/jwt-go"}, Name: "JWT", Category: detect.CategoryAuth},
	{Triggers: []string{"golang.org/x/oauth2"}, Name: "OAuth2", Category: detect.CategoryAuth},

	{Triggers: []string{"github.com/stretchr/testify"}, Name: "Testify", Category: detect.CategoryTesting},
	{Triggers: []string{"go.uber.org/mock", "github.com/golang/mock"}, Name: "gomock", Category: detect.CategoryTesting},
	{Triggers: []string{"github.com/onsi/ginkgo", "github.com/onsi/gomega"}, Name: "Ginkgo", Category: detect.CategoryTesting},

	{Triggers: []string{"github.com/go-playground/validator"}, Name: "Validator", Category: detect.CategoryValidation},
	{Triggers: []string{"github.com/google/uuid"}, Name: "UUID", Category: detect.CategorySerialization},
	{Triggers: []string{"golang.org/x/sync"}, Name: "x/sync", Category: detect.CategoryRuntime},
}

// noise: assertion internals and transitive helper modules that only appear
// because something else requires them.
var noise = detect.NewNoiseList(
	[]string{
		"github.com/davecgh/go-spew",
		"github.com/pmezard/go-difflib",
		"github.com/stretchr/objx",
		"github.com/inconshreveable/mousetrap",
		"github.com/mattn/go-isatty",
		"github.com/mattn/go-colorable",
	},
	[]string{"golang.org/x/"},
)

func ruleSet() detect.RuleSet {
	return detect.RuleSet{
		Rules:         rules,
		Noise:         noise,
		FrameworkKeys: frameworkKeys,
		MatchKey:      matchModule,
	}
}

// ClassifyStack applies the Go rule table with prefix-aware module matching.
func (a *Adapter) ClassifyStack(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.DetectedStack {
	return ruleSet().Classify(manifest, facts)
}
