package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Library packages stay usable without the CLI; renderers stay below commands.
func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"phyloframe/pkg/": {
			"phyloframe/internal/", "phyloframe/cmd/",
		},
		"phyloframe/internal/output": {
			"phyloframe/internal/writers", "phyloframe/internal/cli",
			"phyloframe/internal/app", "phyloframe/cmd/",
		},
		"phyloframe/internal/writers": {
			"phyloframe/internal/cli", "phyloframe/internal/app", "phyloframe/cmd/",
		},
		"phyloframe/internal/config": {
			"phyloframe/internal/cli", "phyloframe/internal/app",
			"phyloframe/internal/writers", "phyloframe/cmd/",
		},
		"phyloframe/internal/cli": {
			"phyloframe/internal/app", "phyloframe/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "phyloframe/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "phyloframe/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
