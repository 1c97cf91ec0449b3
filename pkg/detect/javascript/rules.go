package javascript

import (
	"github.com/matzehuels/stackscout/pkg/detect"
)

// hasComponentsDir corroborates design-system wrappers that are assembled
// from low-level primitives rather than installed as a single package.
func hasComponentsDir(_ *detect.ManifestResult, facts *detect.StructureFacts) bool {
	return facts != nil && facts.HasComponentsDir
}

// rules is the ordered classification table. The shadcn/ui rule runs before
// the Radix UI rule and claims the shared primitives key, so a project that
// vendors shadcn components does not additionally report Radix UI.
var rules = []detect.Rule{
	{
		Triggers:   []string{"class-variance-authority", "tailwind-merge", "@radix-ui/react-slot"},
		Name:       "shadcn/ui",
		Category:   detect.CategoryUI,
		RequireAll: true,
		Condition:  hasComponentsDir,
	},
	{
		Triggers: []string{"@radix-ui/react-slot", "@radix-ui/react-dialog", "@radix-ui/react-dropdown-menu", "@radix-ui/react-popover"},
		Name:     "Radix UI",
		Category: detect.CategoryUI,
	},
	{Triggers: []string{"@mui/material"}, Name: "Material UI", Category: detect.CategoryUI},
	{Triggers: []string{"@chakra-ui/react"}, Name: "Chakra UI", Category: detect.CategoryUI},
	{Triggers: []string{"antd"}, Name: "Ant Design", Category: detect.CategoryUI},

	{Triggers: []string{"tailwindcss"}, Name: "Tailwind CSS", Category: detect.CategoryStyling},
	{Triggers: []string{"styled-components"}, Name: "styled-components", Category: detect.CategoryStyling},
	{Triggers: []string{"@emotion/react", "@emotion/styled"}, Name: "Emotion", Category: detect.CategoryStyling},
	{Triggers: []string{"sass", "node-sass"}, Name: "Sass", Category: detect.CategoryStyling},

	{
		Triggers:    []string{"prisma", "@prisma/client"},
		Name:        "Prisma",
		Category:    detect.CategoryORM,
		VersionFrom: "@prisma/client",
	},
	{Triggers: []string{"drizzle-orm", "drizzle-kit"}, Name: "Drizzle", Category: detect.CategoryORM},
	{Triggers: []string{"typeorm"}, Name: "TypeORM", Category: detect.CategoryORM},
	{Triggers: []string{"sequelize"}, Name: "Sequelize", Category: detect.CategoryORM},
	{Triggers: []string{"knex"}, Name: "Knex", Category: detect.CategoryORM},

	{Triggers: []string{"mongoose", "mongodb"}, Name: "MongoDB", Category: detect.CategoryDatabase},
	{Triggers: []string{"pg", "postgres", "pg-promise"}, Name: "PostgreSQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"mysql2", "mysql"}, Name: "MySQL", Category: detect.CategoryDatabase},
	{Triggers: []string{"better-sqlite3", "sqlite3"}, Name: "SQLite", Category: detect.CategoryDatabase},
	{Triggers: []string{"ioredis", "redis"}, Name: "Redis", Category: detect.CategoryCache},

	{Triggers: []string{"next-auth", "@auth/core"}, Name: "Auth.js", Category: detect.CategoryAuth},
	{Triggers: []string{"@clerk/nextjs", "@clerk/clerk-react"}, Name: "Clerk", Category: detect.CategoryAuth},
	{Triggers: []string{"passport"}, Name: "Passport", Category: detect.CategoryAuth},
	{Triggers: []string{"jsonwebtoken"}, Name: "JWT", Category: detect.CategoryAuth},

	{Triggers: []string{"@trpc/server", "@trpc/client"}, Name: "tRPC", Category: detect.CategoryAPI},
	{Triggers: []string{"@apollo/client", "apollo-server", "graphql"}, Name: "GraphQL", Category: detect.CategoryAPI},
	{Triggers: []string{"socket.io", "socket.io-client"}, Name: "Socket.IO", Category: detect.CategoryMessaging},
	{Triggers: []string{"axios"}, Name: "Axios", Category: detect.CategoryHTTP},

	{Triggers: []string{"@tanstack/react-query", "react-query"}, Name: "TanStack Query", Category: detect.CategoryState},
	{
		Triggers:    []string{"@reduxjs/toolkit", "redux", "react-redux"},
		Name:        "Redux",
		Category:    detect.CategoryState,
		VersionFrom: "@reduxjs/toolkit",
	},
	{Triggers: []string{"zustand"}, Name: "Zustand", Category: detect.CategoryState},
	{Triggers: []string{"mobx"}, Name: "MobX", Category: detect.CategoryState},

	{Triggers: []string{"zod"}, Name: "Zod", Category: detect.CategoryValidation},
	{Triggers: []string{"yup"}, Name: "Yup", Category: detect.CategoryValidation},

	{Triggers: []string{"vitest"}, Name: "Vitest", Category: detect.CategoryTesting},
	{Triggers: []string{"jest"}, Name: "Jest", Category: detect.CategoryTesting},
	{Triggers: []string{"@playwright/test", "playwright"}, Name: "Playwright", Category: detect.CategoryTesting},
	{Triggers: []string{"cypress"}, Name: "Cypress", Category: detect.CategoryTesting},
	{Triggers: []string{"mocha"}, Name: "Mocha", Category: detect.CategoryTesting},
	{
		Triggers: []string{"@testing-library/react", "@testing-library/dom", "@testing-library/jest-dom"},
		Name:     "Testing Library",
		Category: detect.CategoryTesting,
	},

	{Triggers: []string{"typescript"}, Name: "TypeScript", Category: detect.CategoryBuild},
	{Triggers: []string{"vite"}, Name: "Vite", Category: detect.CategoryBuild},
	{Triggers: []string{"webpack"}, Name: "Webpack", Category: detect.CategoryBuild},
	{Triggers: []string{"esbuild"}, Name: "esbuild", Category: detect.CategoryBuild},
	{Triggers: []string{"rollup"}, Name: "Rollup", Category: detect.CategoryBuild},
	{Triggers: []string{"@babel/core"}, Name: "Babel", Category: detect.CategoryBuild},
	{Triggers: []string{"turbo"}, Name: "Turborepo", Category: detect.CategoryBuild},

	{Triggers: []string{"eslint"}, Name: "ESLint", Category: detect.CategoryLint},
	{Triggers: []string{"prettier"}, Name: "Prettier", Category: detect.CategoryLint},
	{Triggers: []string{"@biomejs/biome"}, Name: "Biome", Category: detect.CategoryLint},

	{Triggers: []string{"storybook", "@storybook/react"}, Name: "Storybook", Category: detect.CategoryUI},
	{Triggers: []string{"dotenv"}, Name: "dotenv", Category: detect.CategoryConfig},
	{Triggers: []string{"winston", "pino"}, Name: "Logging", Category: detect.CategoryLogging},
	{Triggers: []string{"electron"}, Name: "Electron", Category: detect.CategoryRuntime},
}

// noise: transitive utilities, type-only packages, polyfills, and platform
// binary shims that are never a deliberate technology choice.
var noise = detect.NewNoiseList(
	[]string{
		"tslib",
		"core-js",
		"regenerator-runtime",
		"caniuse-lite",
		"csstype",
		"source-map",
		"source-map-support",
		"cross-env",
		"rimraf",
		"glob",
		"chalk",
		"semver",
		"ms",
		"debug",
		"autoprefixer",
		"postcss",
		"react-dom",
		"vue-router",
		"scheduler",
	},
	[]string{
		"@types/",
		"@babel/",
		"@esbuild/",
		"@rollup/rollup-",
		"@next/swc-",
		"@swc/core-",
	},
)

func ruleSet() detect.RuleSet {
	return detect.RuleSet{
		Rules:         rules,
		Noise:         noise,
		FrameworkKeys: frameworkKeys,
	}
}

// ClassifyStack applies the JavaScript rule table to the dependency map.
func (a *Adapter) ClassifyStack(manifest *detect.ManifestResult, facts *detect.StructureFacts) *detect.DetectedStack {
	return ruleSet().Classify(manifest, facts)
}
