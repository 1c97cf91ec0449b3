package java

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

var rules = []detect.Rule{
	{Triggers: []string{"org.springframework.boot:spring-boot-starter-data-jpa", "org.springframework.data:spring-data-jpa"}, Name: "Spring Data JPA", Category: detect.CategoryORM},
	{Triggers: []string{"org.hibernate:", "org.hibernate.orm:"}, Name: "Hibernate", Category: detect.CategoryORM},
	{Triggers: []string{"org.mybatis:", "org.mybatis.spring.boot:"}, Name: "MyBatis", Category: detect.CategoryORM},
	{Triggers: []string{"org.jooq:"}, Name: "jOOQ", Category: detect.CategoryORM},

	{Triggers: []string{"org.flywaydb:"}, Name: "Flyway", Category: detect.CategoryDatabase},
	{Triggers: []string{"org.liquibase:"}, Name: "Liquibase", Category: detect.CategoryDatabase},
	{Triggers: []string{"org.postgresql:postgresql"}, Name: "PostgreSQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"com.mysql:mysql-connector-j", "mysql:mysql-connector-java"}, Name: "MySQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"com.h2database:h2"}, Name: "H2", Category: detect.CategoryDatabase},
	{Triggers: []string{"org.mongodb:", "org.springframework.boot:spring-boot-starter-data-mongodb"}, Name: "MongoDB", Category: detect.CategoryDatabase},
	{Triggers: []string{"org.springframework.boot:spring-boot-starter-data-redis", "redis.clients:jedis", "io.lettuce:lettuce-core"}, Name: "Redis", Category: detect.CategoryCache},

	{Triggers: []string{"org.springframework.boot:spring-boot-starter-security", "org.springframework.security:"}, Name: "Spring Security", Category: detect.CategoryAuth},
	{Triggers: []string{"io.jsonwebtoken:", "com.auth0:java-jwt"}, Name: "JWT", Category: detect.CategoryAuth},

	{Triggers: []string{"org.apache.kafka:", "org.springframework.kafka:"}, Name: "Kafka", Category: detect.CategoryMessaging},
	{Triggers: []string{"org.springframework.amqp:", "com.rabbitmq:"}, Name: "RabbitMQ", Category: detect.CategoryMessaging},
	{Triggers: []string{"io.grpc:"}, Name: "gRPC", Category: detect.CategoryAPI},
	{Triggers: []string{"com.graphql-java:", "org.springframework.boot:spring-boot-starter-graphql"}, Name: "GraphQL", Category: detect.CategoryAPI},
	{Triggers: []string{"com.squareup.okhttp3:"}, Name: "OkHttp", Category: detect.CategoryHTTP},
	{Triggers: []string{"com.squareup.retrofit2:"}, Name: "Retrofit", Category: detect.CategoryHTTP},

	{Triggers: []string{"com.fasterxml.jackson.core:"}, Name: "Jackson", Category: detect.CategorySerialization},
	{Triggers: []string{"com.google.code.gson:gson"}, Name: "Gson", Category: detect.CategorySerialization},

	{Triggers: []string{"org.projectlombok:lombok"}, Name: "Lombok", Category: detect.CategoryBuild},
	{Triggers: []string{"org.mapstruct:"}, Name: "MapStruct", Category: detect.CategoryBuild},

	{Triggers: []string{"org.junit.jupiter:", "junit:junit"}, Name: "JUnit", Category: detect.CategoryTesting},
	{Triggers: []string{"org.mockito:"}, Name: "Mockito", Category: detect.CategoryTesting},
	{Triggers: []string{"org.assertj:"}, Name: "AssertJ", Category: detect.CategoryTesting},
	{Triggers: []string{"org.testcontainers:"}, Name: "Testcontainers", Category: detect.CategoryTesting},
	{Triggers: []string{"io.rest-assured:"}, Name: "REST Assured", Category: detect.CategoryTesting},
	{Triggers: []string{"org.springframework.boot:spring-boot-starter-test"}, Name: "Spring Test", Category: detect.CategoryTesting},

	{Triggers: []string{"org.slf4j:"}, Name: "SLF4J", Category: detect.CategoryLogging},
	{Triggers: []string{"ch.qos.logback:"}, Name: "Logback", Category: detect.CategoryLogging},
	{Triggers: []string{"org.apache.logging.log4j:"}, Name: "Log4j", Category: detect.CategoryLogging},
	{Triggers: []string{"io.micrometer:"}, Name: "Micrometer", Category: detect.CategoryObservability},
	{Triggers: []string{"io.opentelemetry:"}, Name: "OpenTelemetry", Category: detect.CategoryObservability},

	{Triggers: []string{"org.thymeleaf:", "org.springframework.boot:spring-boot-starter-thymeleaf"}, Name: "Thymeleaf", Category: detect.CategoryTemplating},
	{Triggers: []string{"jakarta.validation:", "org.hibernate.validator:", "org.springframework.boot:spring-boot-starter-validation"}, Name: "Bean Validation", Category: detect.CategoryValidation},
	{Triggers: []string{"info.picocli:"}, Name: "Picocli", Category: detect.CategoryCLI},
}

// noise: annotation-only APIs, common transitive utilities, and the
// framework umbrella groups whose individual starters are accounted for by
// the framework detector and the rules above.
var noise = detect.NewNoiseList(
	[]string{
		"org.jetbrains:annotations",
		"com.google.code.findbugs:jsr305",
		"org.apache.commons:commons-lang3",
		"commons-io:commons-io",
		"com.google.guava:guava",
	},
	[]string{
		"jakarta.annotation:",
		"javax.annotation:",
		"org.springframework.boot:",
		"org.springframework:",
		"io.quarkus:",
		"io.micronaut:",
		"io.vertx:",
		"io.dropwizard:",
	},
)

func ruleSet() detect.RuleSet {
	return detect.RuleSet{
		Rules:         rules,
		Noise:         noise,
		FrameworkKeys: frameworkKeys,
		MatchKey:      matchCoordinate,
	}
}

// ClassifyStack applies the Java rule table with coordinate matching.
func (a *Adapter) ClassifyStack(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.DetectedStack {
	return ruleSet().Classify(manifest, facts)
}
