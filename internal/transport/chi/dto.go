package chi

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	ErrorCodeBadRequest      ErrorCode = "bad_request"
	ErrorCodeCatalogNotFound ErrorCode = "catalog_not_found"
	ErrorCodeInvalidCriteria ErrorCode = "invalid_criteria"
	ErrorCodeInvalidRating   ErrorCode = "invalid_rating"
	ErrorCodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CatalogSummary is one entry of GET /catalogs.
type CatalogSummary struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Section    string   `json:"section"`
	Records    int      `json:"records"`
	Dimensions []string `json:"dimensions"`
}

// CatalogListResponse is the body of GET /catalogs.
type CatalogListResponse struct {
	Items []CatalogSummary `json:"items"`
	Count int              `json:"count"`
}

// Dimension describes one filter control.
type Dimension struct {
	Key     string   `json:"key"`
	Field   string   `json:"field"`
	Kind    string   `json:"kind"`
	Match   string   `json:"match"`
	Options []string `json:"options"`
}

// CatalogResponse is the body of GET /catalogs/{name}.
type CatalogResponse struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Section    string      `json:"section"`
	Columns    []string    `json:"columns"`
	Dimensions []Dimension `json:"dimensions"`
	Records    int         `json:"records"`
}

// RecordsResponse is the body of GET /catalogs/{name}/records.
// Rows are aligned with Fields; Columns lists the fields shown by default.
type RecordsResponse struct {
	Catalog  string              `json:"catalog"`
	Criteria map[string][]string `json:"criteria"`
	Fields   []string            `json:"fields"`
	Columns  []string            `json:"columns"`
	Rows     [][]any             `json:"rows"`
	Matched  int                 `json:"matched"`
	Total    int                 `json:"total"`
}

// RatingItem is one skill rating.
type RatingItem struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// RatingInput is one submitted rating. Rating is required.
type RatingInput struct {
	Skill  string `json:"skill"`
	Rating *int   `json:"rating"`
}

// AssessmentRequest is the body of POST /assessment.
type AssessmentRequest struct {
	Ratings []RatingInput `json:"ratings"`
}

// Recommendation is the advice for one rated skill.
type Recommendation struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
	Tier   string `json:"tier"`
	Advice string `json:"advice"`
}

// AssessmentResponse is the body of POST /assessment.
type AssessmentResponse struct {
	NeedsDevelopment []string         `json:"needs_development"`
	Developing       []string         `json:"developing"`
	Strength         []string         `json:"strength"`
	Ratings          []RatingItem     `json:"ratings"`
	Recommendations  []Recommendation `json:"recommendations"`
}

// TierBand is the guidance and rating range of one tier.
type TierBand struct {
	Tier    string `json:"tier"`
	From    int    `json:"from"`
	To      int    `json:"to"`
	Heading string `json:"heading"`
	Advice  string `json:"advice"`
}

// AssessmentFormResponse is the body of GET /assessment/form.
type AssessmentFormResponse struct {
	Title         string     `json:"title"`
	Skills        []string   `json:"skills"`
	DefaultRating int        `json:"default_rating"`
	MinRating     int        `json:"min_rating"`
	MaxRating     int        `json:"max_rating"`
	Tiers         []TierBand `json:"tiers"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}
