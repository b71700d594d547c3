package scenario

import "github.com/okampfer/lifesim/internal/sim"

// Scenario is a parsed lifecycle scenario document.
type Scenario struct {
	APIVersion string         `yaml:"apiVersion" json:"apiVersion"`
	Kind       string         `yaml:"kind" json:"kind"`
	Metadata   Metadata       `yaml:"metadata" json:"metadata"`
	Spec       sim.Parameters `yaml:"spec" json:"spec"`
}

// Metadata identifies the asset a scenario models.
type Metadata struct {
	ID          string `yaml:"id" json:"id"`
	Asset       string `yaml:"asset" json:"asset"`
	Owner       string `yaml:"owner,omitempty" json:"owner,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ScenarioWithFile pairs a scenario with its source file path.
type ScenarioWithFile struct {
	Scenario *Scenario
	File     string
}

// ValidationError represents a validation error for a specific file.
type ValidationError struct {
	File    string
	Path    string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path != "" {
		return e.File + ": " + e.Path + ": " + e.Message
	}
	return e.File + ": " + e.Message
}
