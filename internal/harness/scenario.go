package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/time64/internal/ir"
)

// Scenario defines a conversion conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Mode selects UTC or local decomposition for every case.
	Mode ir.Mode `yaml:"mode"`

	// Zone is the local zone, in any form config.ParseZone accepts.
	// Empty means UTC so that results never depend on the machine.
	Zone string `yaml:"zone,omitempty"`

	// FoldPast controls folding of years before 1902 that the host
	// rejects. Default: true.
	FoldPast *bool `yaml:"fold_past,omitempty"`

	// RunToken is the fixed run token. Default: "scenario-<name>".
	RunToken string `yaml:"run_token,omitempty"`

	// Cases are converted in order.
	Cases []Case `yaml:"cases"`

	// Assertions validate the run as a whole.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case is one input and its expected decomposition.
type Case struct {
	Input int64 `yaml:"input"`

	// Expect specifies the expected record. If nil, only the record
	// checks are applied.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected record fields. Nil fields are not compared.
type ExpectClause struct {
	// Date is YYYY-MM-DD with the full year.
	Date string `yaml:"date,omitempty"`

	// Time is HH:MM:SS.
	Time string `yaml:"time,omitempty"`

	Wday   *int    `yaml:"wday,omitempty"`
	Yday   *int    `yaml:"yday,omitempty"`
	IsDST  *bool   `yaml:"isdst,omitempty"`
	GMTOff *int64  `yaml:"gmtoff,omitempty"`
	Zone   *string `yaml:"zone,omitempty"`

	Folded    *bool `yaml:"folded,omitempty"`
	ProxyYear *int  `yaml:"proxy_year,omitempty"`

	// Error is the expected error code, e.g. "overflow".
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the run as a whole.
type Assertion struct {
	// Type specifies the assertion type: fold_count, error_count, seq_order.
	Type string `yaml:"type"`

	// Count is the expected number (fold_count, error_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertFoldCount  = "fold_count"
	AssertErrorCount = "error_count"
	AssertSeqOrder   = "seq_order"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if !s.Mode.Valid() {
		return fmt.Errorf("mode must be utc or local, got %q", s.Mode)
	}
	if s.Mode == ir.ModeUTC && (s.Zone != "" || s.FoldPast != nil) {
		return fmt.Errorf("zone and fold_past only apply to local mode")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Expect == nil {
			continue
		}
		if c.Expect.Error != "" && (c.Expect.Date != "" || c.Expect.Time != "" || c.Expect.Folded != nil) {
			return fmt.Errorf("cases[%d].expect: error excludes calendar fields", i)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertFoldCount, AssertErrorCount:
			if a.Count < 0 {
				return fmt.Errorf("assertions[%d]: count must be non-negative for %s", i, a.Type)
			}
		case AssertSeqOrder:
		case "":
			return fmt.Errorf("assertions[%d]: type is required", i)
		default:
			return fmt.Errorf("assertions[%d]: unknown assertion type %q", i, a.Type)
		}
	}
	return nil
}

// Inputs returns the case inputs in order.
func (s *Scenario) Inputs() []int64 {
	out := make([]int64, len(s.Cases))
	for i, c := range s.Cases {
		out[i] = c.Input
	}
	return out
}

func (s *Scenario) runToken() string {
	if s.RunToken != "" {
		return s.RunToken
	}
	return "scenario-" + s.Name
}

func (s *Scenario) foldPast() bool {
	return s.FoldPast == nil || *s.FoldPast
}

func (s *Scenario) zone() string {
	if s.Zone == "" {
		return "UTC"
	}
	return s.Zone
}
