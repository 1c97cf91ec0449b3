package python

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

// rules is the ordered classification table. Keys are canonical PyPI names
// (lowercase, hyphenated); the parsers normalize before the table runs.
var rules = []detect.Rule{
	{
		Triggers:    []string{"sqlalchemy", "flask-sqlalchemy"},
		Name:        "SQLAlchemy",
		Category:    detect.CategoryORM,
		VersionFrom: "sqlalchemy",
	},
	{Triggers: []string{"alembic"}, Name: "Alembic", Category: detect.CategoryDatabase},
	{Triggers: []string{"djangorestframework"}, Name: "Django REST Framework", Category: detect.CategoryAPI},
	{Triggers: []string{"tortoise-orm"}, Name: "Tortoise ORM", Category: detect.CategoryORM},
	{Triggers: []string{"peewee"}, Name: "Peewee", Category: detect.CategoryORM},

	{Triggers: []string{"psycopg", "psycopg2", "psycopg2-binary", "asyncpg"}, Name: "PostgreSQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"pymysql", "mysqlclient", "aiomysql"}, Name: "MySQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"pymongo", "motor"}, Name: "MongoDB", Category: detect.CategoryDatabase},
	{Triggers: []string{"redis", "aioredis"}, Name: "Redis", Category: detect.CategoryCache},

	{Triggers: []string{"celery"}, Name: "Celery", Category: detect.CategoryMessaging},
	{Triggers: []string{"kombu", "pika", "aio-pika"}, Name: "RabbitMQ", Category: detect.CategoryMessaging},
	{Triggers: []string{"kafka-python", "confluent-kafka", "aiokafka"}, Name: "Kafka", Category: detect.CategoryMessaging},

	{Triggers: []string{"pydantic", "pydantic-settings"}, Name: "Pydantic", Category: detect.CategoryValidation, VersionFrom: "pydantic"},
	{Triggers: []string{"marshmallow"}, Name: "Marshmallow", Category: detect.CategorySerialization},

	{Triggers: []string{"pytest", "pytest-asyncio", "pytest-cov"}, Name: "pytest", Category: detect.CategoryTesting, VersionFrom: "pytest"},
	{Triggers: []string{"tox"}, Name: "tox", Category: detect.CategoryTesting},
	{Triggers: []string{"hypothesis"}, Name: "Hypothesis", Category: detect.CategoryTesting},

	{Triggers: []string{"ruff"}, Name: "Ruff", Category: detect.CategoryLint},
	{Triggers: []string{"black"}, Name: "Black", Category: detect.CategoryLint},
	{Triggers: []string{"flake8"}, Name: "Flake8", Category: detect.CategoryLint},
	{Triggers: []string{"isort"}, Name: "isort", Category: detect.CategoryLint},
	{Triggers: []string{"mypy"}, Name: "mypy", Category: detect.CategoryLint},

	{Triggers: []string{"uvicorn"}, Name: "Uvicorn", Category: detect.CategoryRuntime},
	{Triggers: []string{"gunicorn"}, Name: "Gunicorn", Category: detect.CategoryRuntime},

	{Triggers: []string{"httpx"}, Name: "HTTPX", Category: detect.CategoryHTTP},
	{Triggers: []string{"requests"}, Name: "Requests", Category: detect.CategoryHTTP},

	{Triggers: []string{"jinja2"}, Name: "Jinja2", Category: detect.CategoryTemplating},
	{Triggers: []string{"orjson", "msgpack"}, Name: "Serialization", Category: detect.CategorySerialization},
	{Triggers: []string{"structlog", "loguru"}, Name: "Logging", Category: detect.CategoryLogging},
	{Triggers: []string{"python-dotenv", "dynaconf"}, Name: "Config", Category: detect.CategoryConfig},
	{Triggers: []string{"click", "typer"}, Name: "CLI", Category: detect.CategoryCLI},
}

// noise: packaging plumbing and transitive utilities that every environment
// carries regardless of the project's actual technology choices.
var noise = detect.NewNoiseList(
	[]string{
		"setuptools",
		"wheel",
		"pip",
		"six",
		"certifi",
		"idna",
		"urllib3",
		"charset-normalizer",
		"typing-extensions",
		"packaging",
		"importlib-metadata",
		"zipp",
		"colorama",
		"markupsafe",
		"itsdangerous",
		"werkzeug",
		"anyio",
		"sniffio",
		"h11",
	},
	[]string{"types-"},
)

func ruleSet() detect.RuleSet {
	return detect.RuleSet{
		Rules:         rules,
		Noise:         noise,
		FrameworkKeys: frameworkKeys,
	}
}

// ClassifyStack applies the Python rule table to the dependency map.
func (a *Adapter) ClassifyStack(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.DetectedStack {
	return ruleSet().Classify(manifest, facts)
}
