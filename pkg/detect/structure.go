package detect

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ScanStructure probes the project root for the directories and marker files
// that framework detectors and classifier conditions consume.
//
// All probes are independent, so they run concurrently; there is no ordering
// dependency between checking for a components directory and a Dockerfile.
// A missing path resolves immediately as absent. Each goroutine writes a
// distinct field, so no locking is needed.
func ScanStructure(root string) (*StructureFacts, error) {
	facts := &StructureFacts{}

	var g errgroup.Group
	probeDir := func(dst *bool, candidates ...string) {
		g.Go(func() error {
			for _, c := range candidates {
				if dirExists(filepath.Join(root, c)) {
					*dst = true
					return nil
				}
			}
			return nil
		})
	}
	probeFile := func(dst *bool, candidates ...string) {
		g.Go(func() error {
			for _, c := range candidates {
				if fileExists(filepath.Join(root, c)) {
					*dst = true
					return nil
				}
			}
			return nil
		})
	}

	probeDir(&facts.HasComponentsDir, "components", "src/components", "app/components")
	probeDir(&facts.HasAppDir, "app", "src/app")
	probeDir(&facts.HasPagesDir, "pages", "src/pages")
	probeDir(&facts.HasSrcDir, "src")
	probeDir(&facts.HasMigrationsDir, "migrations", "db/migrations", "prisma/migrations", "alembic")
	probeDir(&facts.HasTestsDir, "tests", "test", "__tests__", "spec")
	probeFile(&facts.HasDockerfile, "Dockerfile")
	probeFile(&facts.HasEnvExample, ".env.example", ".env.sample")

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return facts, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
