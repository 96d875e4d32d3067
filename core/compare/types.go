package compare

// Kind classifies a discrepancy. These are business-level findings, not
// failures; a run that produces discrepancies still succeeds.
type Kind string

const (
	// KindMissingInEnvA marks a value present only in environment B.
	KindMissingInEnvA Kind = "missing_in_env_a"
	// KindMissingInEnvB marks a value present only in environment A.
	KindMissingInEnvB Kind = "missing_in_env_b"
	// KindTypeMismatch marks values whose variants differ (object vs list,
	// number vs string, ...). No recursion happens below such a node.
	KindTypeMismatch Kind = "type_mismatch"
	// KindValueMismatch marks unequal scalars.
	KindValueMismatch Kind = "value_mismatch"
	// KindListMismatch marks an unkeyed list pair that is not multiset-equal.
	KindListMismatch Kind = "list_mismatch"
	// KindListUnkeyedMismatch marks the keyless remainder of a keyed list
	// pair that is not multiset-equal.
	KindListUnkeyedMismatch Kind = "list_unkeyed_mismatch"
)

// Discrepancy is one reported structural difference between the two
// environments, anchored to a path inside the comparison scope.
type Discrepancy struct {
	// Applicant is the identity key of the entry the difference belongs to.
	Applicant string `json:"applicant"`

	// Kind classifies the difference.
	Kind Kind `json:"difference_type"`

	// Path locates the value inside the comparison scope,
	// e.g. "tradeLines[accountNumber=A1].balance".
	Path string `json:"path"`

	// EnvAValue is the bounded rendering of the environment A side.
	EnvAValue string `json:"env_a_value"`

	// EnvBValue is the bounded rendering of the environment B side.
	EnvBValue string `json:"env_b_value"`
}

// Options controls comparison behavior.
type Options struct {
	// SummaryMaxLen caps the length of value summaries in reports.
	// Zero selects DefaultSummaryMaxLen.
	SummaryMaxLen int
}

// DefaultSummaryMaxLen is the summary cap used when none is configured.
const DefaultSummaryMaxLen = 400

// Config holds comparison configuration loaded from the environment.
type Config struct {
	// SummaryMaxLen caps the length of value summaries in the CSV report.
	SummaryMaxLen int `mapstructure:"summary_max_len" default:"400"`
}
