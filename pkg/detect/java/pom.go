package java

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/errors"
)

type pomProject struct {
	GroupID    string        `xml:"groupId"`
	ArtifactID string        `xml:"artifactId"`
	Version    string        `xml:"version"`
	Parent     pomParent     `xml:"parent"`
	Properties pomProperties `xml:"properties"`
	Modules    struct {
		Module []string `xml:"module"`
	} `xml:"modules"`
	Dependencies struct {
		Dependency []pomDependency `xml:"dependency"`
	} `xml:"dependencies"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Optional   string `xml:"optional"`
}

// pomProperties captures the free-form <properties> table, whose child
// element names are the property keys.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = pomProperties{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

func (a *Adapter) parsePom(root string) (*detect.ManifestResult, error) {
	data, err := os.ReadFile(filepath.Join(root, "pom.xml"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "pom.xml not readable")
	}

	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestMalformed, err, "pom.xml is not valid XML")
	}

	version := project.Version
	if version == "" {
		version = project.Parent.Version
	}

	result := &detect.ManifestResult{
		Name:              project.ArtifactID,
		Version:           version,
		Dependencies:      detect.DependencyMap{},
		DevDependencies:   detect.DependencyMap{},
		BuildDependencies: detect.DependencyMap{},
		Engines:           map[string]string{},
		PackageManager:    "maven",
		Workspaces:        project.Modules.Module,
	}

	if java := javaRelease(project.Properties); java != "" {
		result.Engines["java"] = java
	}

	for _, dep := range project.Dependencies.Dependency {
		if dep.GroupID == "" || dep.ArtifactID == "" {
			continue
		}
		key := dep.GroupID + ":" + dep.ArtifactID
		raw := resolveProperty(dep.Version, project.Properties, version)
		v := detect.NormalizeVersion(raw)

		switch {
		case dep.Scope == "test":
			result.DevDependencies[key] = v
		case dep.Scope == "provided" || strings.EqualFold(dep.Optional, "true"):
			result.BuildDependencies[key] = v
		default:
			result.Dependencies[key] = v
		}
	}
	return result, nil
}

// resolveProperty substitutes a ${...} version reference from the
// <properties> table. Unresolvable references are treated as unconstrained
// rather than carried through verbatim.
func resolveProperty(version string, props pomProperties, projectVersion string) string {
	if !strings.HasPrefix(version, "${") || !strings.HasSuffix(version, "}") {
		return version
	}
	key := version[2 : len(version)-1]
	if key == "project.version" {
		return projectVersion
	}
	if v, ok := props[key]; ok {
		return v
	}
	return ""
}

// javaRelease reads the JDK target from the conventional property names.
func javaRelease(props pomProperties) string {
	for _, key := range []string{"maven.compiler.release", "maven.compiler.target", "maven.compiler.source", "java.version"} {
		if v, ok := props[key]; ok && v != "" {
			return v
		}
	}
	return ""
}
