package types

// ExtractConfig holds settings for the pattern extraction stage.
// Per prd001-extraction R4.1.
type ExtractConfig struct {
	// UnscopedVoltageToInput controls where a voltage match lands when
	// neither an input nor an output context keyword is present: true
	// (the default) assigns the first unscoped match to voltage_input,
	// false leaves both voltage fields unset. The asymmetry is inherited
	// behavior; this knob exists so callers can opt out of it.
	UnscopedVoltageToInput bool `json:"unscoped_voltage_to_input" yaml:"unscoped_voltage_to_input"`
}

// DefaultExtractConfig returns the extraction defaults.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{UnscopedVoltageToInput: true}
}

// AnalyzeConfig holds settings for the document analysis stage.
// Per prd004-analysis R1.1, R5.1-R5.3.
type AnalyzeConfig struct {
	Extract ExtractConfig `yaml:",inline"`

	// DataDir is the base directory for ingested documents (contains
	// datasheets/, one subdirectory or .txt/.tables.yaml pair per document).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// OutputDir is the directory for analyzed project files (contains
	// projects/).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// CacheSize is the number of per-document parse results kept in the
	// in-memory cache (default 128).
	CacheSize int `json:"cache_size" yaml:"cache_size"`
}

// StoreConfig holds settings for the component store stage.
// Per prd006-component-store R1.2, R2.3.
type StoreConfig struct {
	// OutputDir is the base directory for analysis output (contains
	// projects/ and index/).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReportFormat selects the report output format.
// Per prd005-reporting R3.1-R3.3.
type ReportFormat string

const (
	ReportCSV      ReportFormat = "csv"
	ReportMarkdown ReportFormat = "markdown"
	ReportTable    ReportFormat = "table"
)

// ReportConfig holds settings for the reporting stage.
type ReportConfig struct {
	// OutputDir is the directory for exported reports (contains reports/).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the export format: csv, markdown, or table.
	Format ReportFormat `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Analyze AnalyzeConfig `json:"analyze" yaml:"analyze"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Report  ReportConfig  `json:"report" yaml:"report"`
}
