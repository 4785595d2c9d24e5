package econpath

// Dimension kinds.
const (
	KindSingle = "single"
	KindMulti  = "multi"
)

// Tiers, lowest first.
const (
	TierNeedsDevelopment = "needs_development"
	TierDeveloping       = "developing"
	TierStrength         = "strength"
)

// CatalogInfo describes a catalog and its filter controls.
type CatalogInfo struct {
	Name       string
	Title      string
	Section    string
	Columns    []string
	Dimensions []DimensionInfo
	Records    int
}

// DimensionInfo describes one filter control.
type DimensionInfo struct {
	Key     string
	Field   string
	Kind    string // KindSingle or KindMulti
	Match   string // exact, labels, level
	Options []string
}

// Field is a named record value: string or int64.
type Field struct {
	Name  string
	Value any
}

// Row is one catalog record with fields in catalog order.
type Row struct {
	Fields []Field
}

// Get returns the value of the named field.
func (r Row) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// FilterResult is the visible part of a catalog.
type FilterResult struct {
	Catalog string
	Rows    []Row
	Total   int
}

// Rating is one self-assessed skill in [0,100].
type Rating struct {
	Skill string
	Value int
}

// Recommendation is the advice for one rated skill.
type Recommendation struct {
	Skill  string
	Rating int
	Tier   string
	Advice string
}

// Assessment is a classified self-assessment. Tier lists keep input order.
type Assessment struct {
	NeedsDevelopment []string
	Developing       []string
	Strength         []string
	Recommendations  []Recommendation
}

// Guidance is the advice shown for a tier.
type Guidance struct {
	Tier    string
	Heading string
	Advice  string
}

// Form is the self-assessment questionnaire.
type Form struct {
	Title         string
	Skills        []string
	DefaultRating int
	Guidance      []Guidance
}
