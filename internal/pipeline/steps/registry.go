// Package steps provides step definitions and dependency validation
// for the phrase pipeline plans.
package steps

import (
	"fmt"
	"strings"
)

// Step categories
const (
	CategoryAcquisition = "acquisition"
	CategoryPersistence = "persistence"
	CategoryAnalysis    = "analysis"
)

// Artifacts passed between steps
const (
	ArtifactHTML      = "html"
	ArtifactPhrases   = "phrases"
	ArtifactTopWords  = "top_words"
	ArtifactSentences = "sentences"
)

// Step names
const (
	FetchPage         = "fetch_page"
	ExtractColumns    = "extract_columns"
	LoadSpreadsheet   = "load_spreadsheet"
	SaveSpreadsheet   = "save_spreadsheet"
	CountWords        = "count_words"
	GenerateSentences = "generate_sentences"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name        string
	Category    string
	Description string
	Requires    []string
	Provides    []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	FetchPage: {
		Name:        FetchPage,
		Category:    CategoryAcquisition,
		Description: "Fetching phrase page",
		Requires:    []string{},
		Provides:    []string{ArtifactHTML},
	},
	ExtractColumns: {
		Name:        ExtractColumns,
		Category:    CategoryAcquisition,
		Description: "Extracting Latin and Translation columns",
		Requires:    []string{ArtifactHTML},
		Provides:    []string{ArtifactPhrases},
	},
	LoadSpreadsheet: {
		Name:        LoadSpreadsheet,
		Category:    CategoryPersistence,
		Description: "Loading phrase spreadsheet",
		Requires:    []string{},
		Provides:    []string{ArtifactPhrases},
	},
	SaveSpreadsheet: {
		Name:        SaveSpreadsheet,
		Category:    CategoryPersistence,
		Description: "Saving phrase spreadsheet",
		Requires:    []string{ArtifactPhrases},
		Provides:    []string{},
	},
	CountWords: {
		Name:        CountWords,
		Category:    CategoryAnalysis,
		Description: "Counting most common words",
		Requires:    []string{ArtifactPhrases},
		Provides:    []string{ArtifactTopWords},
	},
	GenerateSentences: {
		Name:        GenerateSentences,
		Category:    CategoryAnalysis,
		Description: "Generating sentences",
		Requires:    []string{ArtifactTopWords},
		Provides:    []string{ArtifactSentences},
	},
}

// RunPlan is the step order of a full run against the remote page.
var RunPlan = []string{FetchPage, ExtractColumns, SaveSpreadsheet, CountWords, GenerateSentences}

// AnalyzePlan is the step order of an analysis of a saved spreadsheet.
var AnalyzePlan = []string{LoadSpreadsheet, CountWords, GenerateSentences}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Lookup returns the definition of a step.
func Lookup(name string) (StepDefinition, error) {
	def, ok := StepRegistry[name]
	if !ok {
		return StepDefinition{}, fmt.Errorf("unknown step: %s", name)
	}
	return def, nil
}

// ValidatePlan checks that every step in plan runs after the steps providing
// its required artifacts. The first step with unmet requirements is reported
// as a *DependencyError.
func ValidatePlan(plan []string) error {
	if len(plan) == 0 {
		return fmt.Errorf("empty plan")
	}

	available := make(map[string]bool)
	for _, name := range plan {
		def, err := Lookup(name)
		if err != nil {
			return err
		}

		var missing []string
		for _, artifact := range def.Requires {
			if !available[artifact] {
				missing = append(missing, artifact)
			}
		}
		if len(missing) > 0 {
			return &DependencyError{
				Step:                name,
				MissingDependencies: missing,
			}
		}

		for _, artifact := range def.Provides {
			available[artifact] = true
		}
	}

	return nil
}

// Label returns the progress label of the i-th (0-based) step of plan,
// for example "Step 2/5: Extracting Latin and Translation columns".
func Label(plan []string, i int) string {
	description := ""
	if i >= 0 && i < len(plan) {
		description = StepRegistry[plan[i]].Description
		if description == "" {
			description = strings.ReplaceAll(plan[i], "_", " ")
		}
	}
	return fmt.Sprintf("Step %d/%d: %s", i+1, len(plan), description)
}
