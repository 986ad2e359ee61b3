package domain

import "time"

// FeatureFlag gates a feature for an explicit set of accounts. The name is
// globally unique; membership updates replace the whole account list.
type FeatureFlag struct {
	ID                int64     `json:"id"`
	Name              string    `json:"featureFlagName"`
	EnabledAccountIDs []int64   `json:"enabledAccountIds"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsEnabledFor reports whether the flag is enabled for the given account.
func (f *FeatureFlag) IsEnabledFor(accountID int64) bool {
	for _, id := range f.EnabledAccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
