package php

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var rules = []detect.Rule{
	{Triggers: []string{"doctrine/orm", "doctrine/doctrine-bundle"}, Name: "Doctrine", Category: detect.CategoryORM, VersionFrom: "doctrine/orm"},
	{Triggers: []string{"illuminate/database"}, Name: "Eloquent", Category: detect.CategoryORM},
	{Triggers: []string{"ext-pdo_pgsql"}, Name: "PostgreSQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"ext-pdo_mysql"}, Name: "MySQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"mongodb/mongodb", "ext-mongodb"}, Name: "MongoDB", Category: detect.CategoryDatabase, VersionFrom: "mongodb/mongodb"},
	{Triggers: []string{"predis/predis", "ext-redis"}, Name: "Redis", Category: detect.CategoryCache, VersionFrom: "predis/predis"},
	{Triggers: []string{"ext-memcached"}, Name: "Memcached", Category: detect.CategoryCache},
	{Triggers: []string{"php-amqplib/php-amqplib", "ext-amqp"}, Name: "RabbitMQ", Category: detect.CategoryMessaging, VersionFrom: "php-amqplib/php-amqplib"},

	{Triggers: []string{"laravel/sanctum"}, Name: "Sanctum", Category: detect.CategoryAuth},
	{Triggers: []string{"laravel/passport"}, Name: "Passport", Category: detect.CategoryAuth},
	{Triggers: []string{"firebase/php-jwt", "lcobucci/jwt"}, Name: "JWT", Category: detect.CategoryAuth},

	{Triggers: []string{"livewire/livewire"}, Name: "Livewire", Category: detect.CategoryUI},
	{Triggers: []string{"inertiajs/inertia-laravel"}, Name: "Inertia", Category: detect.CategoryUI},
	{Triggers: []string{"laravel/horizon"}, Name: "Horizon", Category: detect.CategoryMessaging},
	{Triggers: []string{"laravel/octane"}, Name: "Octane", Category: detect.CategoryRuntime},

	{Triggers: []string{"guzzlehttp/guzzle"}, Name: "Guzzle", Category: detect.CategoryHTTP},
	{Triggers: []string{"twig/twig"}, Name: "Twig", Category: detect.CategoryTemplating},
	{Triggers: []string{"monolog/monolog"}, Name: "Monolog", Category: detect.CategoryLogging},
	{Triggers: []string{"vlucas/phpdotenv"}, Name: "dotenv", Category: detect.CategoryConfig},
	{Triggers: []string{"api-platform/core"}, Name: "API Platform", Category: detect.CategoryAPI},
	{Triggers: []string{"webonyx/graphql-php"}, Name: "GraphQL", Category: detect.CategoryAPI},
	{Triggers: []string{"respect/validation"}, Name: "Validator", Category: detect.CategoryValidation},

	{Triggers: []string{"phpunit/phpunit"}, Name: "PHPUnit", Category: detect.CategoryTesting},
	{Triggers: []string{"pestphp/pest"}, Name: "Pest", Category: detect.CategoryTesting},
	{Triggers: []string{"mockery/mockery"}, Name: "Mockery", Category: detect.CategoryTesting},
	{Triggers: []string{"fakerphp/faker"}, Name: "Faker", Category: detect.CategoryTesting},

	{Triggers: []string{"phpstan/phpstan", "larastan/larastan"}, Name: "PHPStan", Category: detect.CategoryLint, VersionFrom: "phpstan/phpstan"},
	{Triggers: []string{"friendsofphp/php-cs-fixer"}, Name: "PHP-CS-Fixer", Category: detect.CategoryLint},
	{Triggers: []string{"laravel/pint"}, Name: "Pint", Category: detect.CategoryLint},
	{Triggers: []string{"squizlabs/php_codesniffer"}, Name: "CodeSniffer", Category: detect.CategoryLint},
}

// noise: installer plumbing, polyfills, framework component internals, and
// the platform extension constraints that carry no technology signal.
var noise = detect.NewNoiseList(
	[]string{
		"composer/installers",
		"php-http/discovery",
		"psr/log",
		"psr/container",
		"psr/http-message",
		"nesbot/carbon",
		"ramsey/uuid",
		"laravel/tinker",
	},
	[]string{
		"ext-",
		"symfony/",
		"illuminate/",
	},
)

func ruleSet() detect.RuleSet {
	return detect.RuleSet{
		Rules:         rules,
		Noise:         noise,
		FrameworkKeys: frameworkKeys,
	}
}

// ClassifyStack applies the PHP rule table to the dependency map.
func (a *Adapter) ClassifyStack(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.DetectedStack {
	return ruleSet().Classify(manifest, facts)
}
