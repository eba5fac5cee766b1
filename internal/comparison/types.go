package comparison

// LanguageComparison is the full set of content describing how to move
// from one programming language to another. A record is stored under one
// canonical direction per pair; the reverse direction is synthesized by
// the registry (see Resolve).
type LanguageComparison struct {
	SourceLanguage       string                `yaml:"source_language" json:"source_language"`
	TargetLanguage       string                `yaml:"target_language" json:"target_language"`
	SyntaxExamples       []SyntaxExample       `yaml:"syntax_examples" json:"syntax_examples"`
	CommonPitfalls       []CommonPitfall       `yaml:"common_pitfalls" json:"common_pitfalls"`
	KeyDifferences       []KeyDifference       `yaml:"key_differences" json:"key_differences"`
	FrameworkComparisons []FrameworkComparison `yaml:"framework_comparisons,omitempty" json:"framework_comparisons,omitempty"`
}

// SyntaxExample pairs two code snippets illustrating one concept in both
// languages.
type SyntaxExample struct {
	Topic       string `yaml:"topic" json:"topic"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	SourceCode  string `yaml:"source_code" json:"source_code"`
	TargetCode  string `yaml:"target_code" json:"target_code"`
}

// CommonPitfall describes a mistake developers make when switching
// languages. The examples are optional: a pitfall may only be
// demonstrable on one side.
type CommonPitfall struct {
	Title           string  `yaml:"title" json:"title"`
	Description     string  `yaml:"description" json:"description"`
	SourceExample   *string `yaml:"source_example,omitempty" json:"source_example,omitempty"`
	TargetExample   *string `yaml:"target_example,omitempty" json:"target_example,omitempty"`
	CorrectApproach string  `yaml:"correct_approach" json:"correct_approach"`
}

// KeyDifference contrasts how each language approaches one topic.
type KeyDifference struct {
	Topic          string `yaml:"topic" json:"topic"`
	Description    string `yaml:"description" json:"description"`
	SourceApproach string `yaml:"source_approach" json:"source_approach"`
	TargetApproach string `yaml:"target_approach" json:"target_approach"`
}

// FrameworkComparison maps a framework on the source side to its closest
// equivalent on the target side for one category (web, testing, ...).
// MigrationTips and CommonPitfalls are prose authored for the canonical
// direction only; no reversed text exists, so they are carried unchanged
// in mirrored views.
type FrameworkComparison struct {
	Category        string    `yaml:"category" json:"category"`
	SourceFramework Framework `yaml:"source_framework" json:"source_framework"`
	TargetFramework Framework `yaml:"target_framework" json:"target_framework"`
	MigrationTips   []string  `yaml:"migration_tips" json:"migration_tips"`
	CommonPitfalls  []string  `yaml:"common_pitfalls" json:"common_pitfalls"`
}

// Framework describes one side of a framework comparison.
type Framework struct {
	Name         string   `yaml:"name" json:"name"`
	SetupCode    string   `yaml:"setup_code" json:"setup_code"`
	BasicExample string   `yaml:"basic_example" json:"basic_example"`
	Strengths    []string `yaml:"strengths" json:"strengths"`
	Ecosystem    []string `yaml:"ecosystem" json:"ecosystem"`
}

// Language is a selectable language: the lower-case identifier used in
// keys and URLs, and the display name shown in the UI.
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
