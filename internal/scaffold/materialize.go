// Package scaffold writes a project's starter files to scratch storage and
// packs them into a zip archive.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

// Materialize writes the scaffold for cfg into dir, with plan as the README.
// The first filesystem error aborts and is returned; dir may then hold a partial tree.
func Materialize(cfg domain.ProjectConfig, dir, plan string) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	switch cfg.ProjectType {
	case domain.ProjectTypeFullstack:
		frontendDir := filepath.Join(dir, "frontend")
		backendDir := filepath.Join(dir, "backend")
		for _, d := range []string{frontendDir, backendDir, filepath.Join(dir, "database")} {
			if err := ensureDir(d); err != nil {
				return err
			}
		}
		if err := writeFrontend(cfg.TechStack, frontendDir); err != nil {
			return err
		}
		if err := writeBackend(cfg.TechStack, backendDir); err != nil {
			return err
		}
	case domain.ProjectTypeFrontend:
		if err := writeFrontend(cfg.TechStack, dir); err != nil {
			return err
		}
	case domain.ProjectTypeBackend:
		if err := writeBackend(cfg.TechStack, dir); err != nil {
			return err
		}
	}

	return writeCommon(cfg, dir, plan)
}

func writeFrontend(stack domain.TechStack, dir string) error {
	if stack.HasAny(domain.CategoryFrontend, "React", "Vue.js", "Angular") {
		m := frontendManifest(stack.Has(domain.CategoryFrontend, "React"))
		if err := writeJSON(filepath.Join(dir, "package.json"), m); err != nil {
			return err
		}
	}
	if err := ensureDir(filepath.Join(dir, "src")); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "index.html"), indexHTML)
}

func writeBackend(stack domain.TechStack, dir string) error {
	if stack.HasAny(domain.CategoryBackend, "Python", "Flask", "Django", "FastAPI") {
		if err := writeFile(filepath.Join(dir, "requirements.txt"), strings.Join(pythonRequirements, "\n")); err != nil {
			return err
		}
	}
	if stack.HasAny(domain.CategoryBackend, "Node.js", "Express") {
		if err := writeJSON(filepath.Join(dir, "package.json"), nodeBackendManifest()); err != nil {
			return err
		}
	}
	return nil
}

func writeCommon(cfg domain.ProjectConfig, dir, plan string) error {
	if cfg.IncludeReadme {
		if err := writeFile(filepath.Join(dir, "README.md"), plan); err != nil {
			return err
		}
	}
	if cfg.IncludeGitignore {
		if err := writeFile(filepath.Join(dir, ".gitignore"), gitignoreTemplate); err != nil {
			return err
		}
	}
	if cfg.IncludeLicense {
		if err := writeFile(filepath.Join(dir, "LICENSE"), mitLicense); err != nil {
			return err
		}
	}
	return writeFile(filepath.Join(dir, ".env.example"), envExample)
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return writeFile(path, string(b))
}
