package domain

// Default credit caps and limits for credits-based generation.
const (
	DefaultFallWinterCredits = 16
	DefaultSpringCredits     = 10
	DefaultMajorClassLimit   = 3
	DefaultMaxTerms          = 100
)

// CreditLimits holds a pair of per-term credit caps.
type CreditLimits struct {
	FallWinter int
	Spring     int
}

// Preferences are the user-tunable constraints of one generation run.
type Preferences struct {
	Start           Term
	Approach        Approach
	MajorClassLimit int
	Credits         CreditLimits
	LimitFirstYear  bool
	FirstYear       *CreditLimits // nil = same as Credits
	MaxTerms        int           // iteration ceiling
}

// DefaultPreferences returns credits-based preferences starting at start.
func DefaultPreferences(start Term) Preferences {
	return Preferences{
		Start:           start,
		Approach:        ApproachCredits,
		MajorClassLimit: DefaultMajorClassLimit,
		Credits: CreditLimits{
			FallWinter: DefaultFallWinterCredits,
			Spring:     DefaultSpringCredits,
		},
		MaxTerms: DefaultMaxTerms,
	}
}

// TermPlan is one committed term of a generated schedule.
type TermPlan struct {
	Term         Term
	TotalCredits int
	Classes      []Class
}
