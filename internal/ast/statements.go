package ast

// StmtKind identifies which of the eight statement kinds a Statement is.
// The driver dispatches on this value.
type StmtKind int

const (
	StmtUnknown StmtKind = iota
	StmtImport
	StmtLanguage
	StmtMilestone
	StmtTrait
	StmtClass
	StmtSeries
	StmtWord
	StmtSoundChange
)

func (k StmtKind) String() string {
	switch k {
	case StmtImport:
		return "import"
	case StmtLanguage:
		return "language"
	case StmtMilestone:
		return "milestone"
	case StmtTrait:
		return "trait"
	case StmtClass:
		return "class"
	case StmtSeries:
		return "series"
	case StmtWord:
		return "word"
	case StmtSoundChange:
		return "sound-change"
	default:
		return "unknown"
	}
}

// Statement is the common interface every statement kind implements.
type Statement interface {
	Kind() StmtKind
	Pos() Span
}

type stmtBase struct {
	Span Span
}

func (s stmtBase) Pos() Span { return s.Span }

// ImportStmt imports names from another module, located either by scope
// ("@scope/path") or by local/relative path.
type ImportStmt struct {
	stmtBase
	Scoped   bool
	Scope    string // set iff Scoped
	Path     string
	Absolute bool // set iff !Scoped and Path is filesystem-absolute
	Wildcard bool
	Names    []ImportName
}

func (s *ImportStmt) Kind() StmtKind { return StmtImport }

// ImportName is one named member of a named (non-wildcard) import list.
type ImportName struct {
	Name string
	Span Span
}

// LanguageStmt declares a language, optionally with a parent.
type LanguageStmt struct {
	stmtBase
	ID     string
	Name   string
	Parent string // language id; empty means root language
}

func (s *LanguageStmt) Kind() StmtKind { return StmtLanguage }

// MilestoneStmt sets the current language and/or time window for
// subsequent word and sound-change declarations. Any of the three may be
// absent.
type MilestoneStmt struct {
	stmtBase
	HasLanguage bool
	Language    string // language id

	TimeKind MilestoneTimeKind
	Start    int
	End      int // only meaningful when TimeKind == MilestoneRange
}

func (s *MilestoneStmt) Kind() StmtKind { return StmtMilestone }

// MilestoneTimeKind distinguishes the three milestone time shapes.
type MilestoneTimeKind int

const (
	MilestoneTimeNone MilestoneTimeKind = iota
	MilestoneInstant                    // start=t, end=+inf
	MilestoneRange                      // [start, end)
)

// TraitStmt declares a phonological trait and its features.
type TraitStmt struct {
	stmtBase
	Name     string
	Features []FeatureDecl
}

func (s *TraitStmt) Kind() StmtKind { return StmtTrait }

// FeatureDecl is one feature within a trait declaration.
type FeatureDecl struct {
	Labels  []LabelDecl
	Default bool
	Span    Span
}

// LabelDecl is a single synonymous label for a feature.
type LabelDecl struct {
	Label string
	Span  Span
}

// ClassStmt declares a phoneme class: a name, the traits every member
// phoneme must specify, and the phonemes themselves in declaration order.
type ClassStmt struct {
	stmtBase
	Name     string
	Encodes  []string // trait names, in order
	Phonemes []PhonemeDecl
}

func (s *ClassStmt) Kind() StmtKind { return StmtClass }

// PhonemeDecl is one phoneme within a class declaration: a glyph and one
// feature label per entry of the enclosing class's Encodes list.
type PhonemeDecl struct {
	Glyph    string
	Features []LabelDecl // positional, aligned with ClassStmt.Encodes
	Span     Span
}

// SeriesStmt declares a named series, either a list of phoneme glyphs or
// a category (base + modifiers).
type SeriesStmt struct {
	stmtBase
	Name     string
	List     *ListSeriesDecl
	Category *CategoryDecl
}

func (s *SeriesStmt) Kind() StmtKind { return StmtSeries }

// ListSeriesDecl is the body of a list-form series.
type ListSeriesDecl struct {
	Glyphs []LabelDecl // reuses LabelDecl for (text, span) pairs
}

// CategoryDecl is an inline predicate over phonemes: an optional base
// class/series name plus a list of signed feature modifiers.
type CategoryDecl struct {
	Base      string // class or series name; empty if unset
	BaseSpan  Span
	Modifiers []ModifierDecl
	Span      Span
}

// ModifierDecl is one signed feature modifier ("+label" or "-label").
type ModifierDecl struct {
	Label    string
	Negative bool
	Span     Span
}

// WordStmt declares a lexicon entry.
type WordStmt struct {
	stmtBase
	Gloss         string
	GlossSpan     Span
	Pronunciation string
	PronSpan      Span
	Definitions   []DefinitionDecl
}

func (s *WordStmt) Kind() StmtKind { return StmtWord }

// DefinitionDecl is one (part of speech, gloss text) pair.
type DefinitionDecl struct {
	PartOfSpeech string // may be empty
	Text         string
}

// SoundChangeStmt declares a sound change: source -> target / environment.
type SoundChangeStmt struct {
	stmtBase
	Source      *PatternDecl // nil means the empty source (applies between phonemes)
	Target      TargetDecl
	Environment *EnvironmentDecl
	Description string
}

func (s *SoundChangeStmt) Kind() StmtKind { return StmtSoundChange }

// PatternDecl is an ordered list of source segments.
type PatternDecl struct {
	Segments []SegmentDecl
}

// SegmentDecl is one position within a pattern or environment list: either
// a specific phoneme glyph reference or an inline category. SyllableBreak
// marks a parsed syllable-boundary marker, accepted and ignored by the
// engine.
type SegmentDecl struct {
	Phoneme       string // set iff Category == nil && !SyllableBreak
	Category      *CategoryDecl
	SyllableBreak bool
	Span          Span
}

// TargetDecl is a sound change's target: empty, a literal phoneme
// sequence, or a list of feature modifiers.
type TargetDecl struct {
	Empty     bool
	Phonemes  []LabelDecl
	Modifiers []ModifierDecl
}

// EnvironmentDecl is the optional environment of a sound change.
type EnvironmentDecl struct {
	Before      []SegmentDecl
	After       []SegmentDecl
	AnchorStart bool
	AnchorEnd   bool
}
