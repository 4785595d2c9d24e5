package tier

// Tier is the recommendation band a skill rating falls into.
type Tier string

// Tiers, lowest first.
const (
	NeedsDevelopment Tier = "needs_development"
	Developing       Tier = "developing"
	Strength         Tier = "strength"
)

// Band thresholds (inclusive lower bounds).
const (
	DevelopingFrom = 50
	StrengthFrom   = 80
)

// Of buckets a rating: <50 needs development, 50..79 developing, >=80 strength.
func Of(rating int) Tier {
	switch {
	case rating >= StrengthFrom:
		return Strength
	case rating >= DevelopingFrom:
		return Developing
	default:
		return NeedsDevelopment
	}
}

// All returns every tier, lowest first.
func All() []Tier {
	return []Tier{NeedsDevelopment, Developing, Strength}
}

// IsValid checks if the tier is one of the supported values.
func (t Tier) IsValid() bool {
	return t == NeedsDevelopment || t == Developing || t == Strength
}
