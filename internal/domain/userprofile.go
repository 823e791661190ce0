package domain

// UserProfile holds per-user assistant settings. A single row keyed
// "default" is persisted locally; DefaultUserProfile seeds new installs.
type UserProfile struct {
	ID                 string
	Timezone           string // IANA name, e.g. "Europe/Berlin"
	WorkStartHour      int    // inclusive, 24h clock
	WorkEndHour        int    // exclusive, 24h clock
	HomeLocation       string // origin for travel checks when no prior event
	DefaultEventMin    int    // assumed duration when a request omits one
	MaxSuggestions     int    // alternatives offered on conflict
	TravelCheckEnabled bool
}

// DefaultUserProfile returns the settings applied on first run.
func DefaultUserProfile() *UserProfile {
	return &UserProfile{
		ID:                 "default",
		Timezone:           "UTC",
		WorkStartHour:      9,
		WorkEndHour:        18,
		DefaultEventMin:    60,
		MaxSuggestions:     3,
		TravelCheckEnabled: true,
	}
}
