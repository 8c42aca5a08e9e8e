// internal/bedmethyl/group.go
package bedmethyl

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/config"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
)

// Group is one batch of samples analyzed with shared parameters. RunID tags
// the batch in logs and report headers.
type Group struct {
	RunID   string
	Project string
	Params  config.Params
	Items   []*Item
}

// ReadSampleSheet builds a Group from a headerless CSV sample sheet with
// columns: projectname, sample, reference name (no extension), bedmethyl
// file. References are read as "<name>.fa" from the configured sequence
// directory, bedMethyl files from the bedmethyl directory.
func ReadSampleSheet(path string, params config.Params) (*Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sample sheet %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sample sheet %s: empty", path)
	}

	g := &Group{
		RunID:  uuid.NewString(),
		Params: params,
	}
	// The sheet's first column carries the project name; a parameter-sheet
	// projectname overrides it.
	g.Project = strings.TrimSpace(rows[0][0])
	if params.ProjectName != "" {
		g.Project = params.ProjectName
	}

	for i, row := range rows {
		if len(row) < 4 {
			return nil, fmt.Errorf("sample sheet %s row %d: %d columns, want 4", path, i+1, len(row))
		}
		sample := strings.TrimSpace(row[1])
		refName := strings.TrimSpace(row[2])
		bedName := strings.TrimSpace(row[3])

		refs, err := fasta.ReadFile(filepath.Join(params.SequenceDir, refName+".fa"))
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", sample, err)
		}
		recs, err := ReadFile(filepath.Join(params.BedmethylDir, bedName))
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", sample, err)
		}
		g.Items = append(g.Items, &Item{
			Sample:    sample,
			Reference: refs[0],
			Records:   recs,
		})
	}
	return g, nil
}

// Analyze runs every item against the parameter sheet's methylase list.
func (g *Group) Analyze(cat *methylase.Catalog) error {
	names := strings.Fields(g.Params.Methylases)
	if len(names) == 0 {
		return fmt.Errorf("no methylases requested")
	}
	for _, it := range g.Items {
		if err := it.Analyze(cat, names, g.Params.MethylatedCutoff, g.Params.UnmethylatedCutoff); err != nil {
			return fmt.Errorf("sample %s: %w", it.Sample, err)
		}
	}
	return nil
}
