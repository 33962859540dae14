// Package plan reads construction plans: a title, an ordering strategy and
// the words (with clues) to place, stored as YAML.
package plan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/crosswordbuilder/internal/model"
)

// ErrInvalidPlan is returned for plans that parse but cannot be built
var ErrInvalidPlan = errors.New("invalid plan")

// Plan describes a puzzle to build from scratch
type Plan struct {
	Title    string              `yaml:"title"`
	Strategy model.BuildStrategy `yaml:"strategy,omitempty"`
	Words    []model.WordEntry   `yaml:"words"`
}

// Load reads and validates a plan file
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML plan.
// A missing strategy defaults to as-given.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if p.Strategy == "" {
		p.Strategy = model.StrategyAsGiven
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the plan has a title, a known strategy and at least one word
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidPlan)
	}
	if !p.Strategy.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPlan, model.ErrInvalidStrategy, p.Strategy)
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("%w: no words", ErrInvalidPlan)
	}
	for i, w := range p.Words {
		if _, err := model.NormalizeWord(w.Word); err != nil {
			return fmt.Errorf("%w: words[%d]: %w", ErrInvalidPlan, i, err)
		}
	}
	return nil
}

// Marshal encodes the plan as YAML
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
