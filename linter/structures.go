package linter

// TextPosition and TextRange follow the LSP wire shape. Char counts UTF-16
// code units.
type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

type DiagnosticTag int

const (
	Unnecessary DiagnosticTag = 1
	Deprecated  DiagnosticTag = 2
)

type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Tags     []DiagnosticTag    `json:"tags,omitempty"`
}

// linter severity codes
const (
	SeverityFatal      = 0
	SeverityError      = 1
	SeverityWarning    = 2
	SeveritySuggestion = 3
)

type FilePosition struct {
	File string `json:"File"`
	Line int    `json:"Line"` // 1-based
}

// LintWarning is one entry of the linter's Warnings array.
type LintWarning struct {
	Position  FilePosition `json:"Position"`
	Severity  int          `json:"Severity"`
	Code      int          `json:"Code"`
	Message   string       `json:"Message"`
	MacroName string       `json:"MacroName"`
}

// AssembledLine is a source line that produced output.
type AssembledLine struct {
	File string `json:"File"`
	Line int    `json:"Line"` // 1-based
}

// Report is a decoded linter response. Fatal reports carry a single warning
// and no symbol information.
type Report struct {
	Warnings []LintWarning
	Fatal    bool

	AssembledLines    []AssembledLine
	HasAssembledLines bool

	Labels       map[string]uint64
	HasLabels    bool
	Variables    []string
	HasVariables bool
	Macros       []string
	HasMacros    bool
}
