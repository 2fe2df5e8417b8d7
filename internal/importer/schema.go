package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level structure of a catalog import file. The
// field names follow the catalog's column names.
type CatalogSchema struct {
	Classes []ClassImport  `json:"classes" yaml:"classes"`
	Courses []CourseImport `json:"courses" yaml:"courses"`
}

// ClassImport defines one catalog class.
type ClassImport struct {
	ID               int64    `json:"id" yaml:"id"`
	Number           string   `json:"class_number" yaml:"class_number"`
	Name             string   `json:"class_name" yaml:"class_name"`
	Credits          int      `json:"credits" yaml:"credits"`
	SemestersOffered []string `json:"semesters_offered" yaml:"semesters_offered"`
	Prerequisites    []int64  `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Corequisites     []int64  `json:"corequisites,omitempty" yaml:"corequisites,omitempty"`
	DaysOffered      []string `json:"days_offered,omitempty" yaml:"days_offered,omitempty"`
	TimesOffered     []string `json:"times_offered,omitempty" yaml:"times_offered,omitempty"`
	SeniorClass      bool     `json:"is_senior_class,omitempty" yaml:"is_senior_class,omitempty"`
	Restrictions     string   `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// CourseImport defines a course and its sections.
type CourseImport struct {
	ID       int64           `json:"id" yaml:"id"`
	Name     string          `json:"course_name" yaml:"course_name"`
	Type     string          `json:"course_type" yaml:"course_type"`
	Holokai  string          `json:"holokai,omitempty" yaml:"holokai,omitempty"`
	EILLevel int             `json:"eil_level,omitempty" yaml:"eil_level,omitempty"`
	Sections []SectionImport `json:"sections" yaml:"sections"`
}

// SectionImport defines a course section. Sections are required unless
// is_required is explicitly false.
type SectionImport struct {
	ID            int64   `json:"id" yaml:"id"`
	Name          string  `json:"section_name" yaml:"section_name"`
	Required      *bool   `json:"is_required,omitempty" yaml:"is_required,omitempty"`
	CreditsNeeded int     `json:"credits_needed_to_take,omitempty" yaml:"credits_needed_to_take,omitempty"`
	DisplayOrder  int     `json:"display_order,omitempty" yaml:"display_order,omitempty"`
	Classes       []int64 `json:"classes" yaml:"classes"`
}

// IsRequired resolves the optional is_required flag.
func (s SectionImport) IsRequired() bool {
	return s.Required == nil || *s.Required
}

// LoadCatalogSchema reads a catalog file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return ParseCatalogSchema(data, format)
}

// Format is a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseCatalogSchema decodes a catalog document.
func ParseCatalogSchema(data []byte, format Format) (*CatalogSchema, error) {
	var schema CatalogSchema
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing catalog yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing catalog json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return &schema, nil
}
