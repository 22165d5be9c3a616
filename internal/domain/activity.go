// internal/domain/activity.go
package domain

import "time"

// AccountID identifies an account. An account that has not been persisted yet
// carries a nil *AccountID.
type AccountID int64

// ActivityID identifies a persisted activity.
type ActivityID int64

// Activity is an immutable record of a single directional money movement
// between two accounts. It references both parties but belongs to exactly one
// owning account's view, so the same transfer appears correctly signed in both
// parties' activity windows.
type Activity struct {
	ID              *ActivityID `db:"id" json:"id"` // nil until persisted, then fixed forever
	OwnerAccountID  AccountID   `db:"owner_account_id" json:"owner_account_id"`
	SourceAccountID AccountID   `db:"source_account_id" json:"source_account_id"` // the debited account
	TargetAccountID AccountID   `db:"target_account_id" json:"target_account_id"` // the credited account
	Timestamp       time.Time   `db:"timestamp" json:"timestamp"`
	Money           Money       `json:"money"`
}

// NewActivity creates a not-yet-persisted Activity.
func NewActivity(owner, source, target AccountID, timestamp time.Time, money Money) Activity {
	return Activity{
		OwnerAccountID:  owner,
		SourceAccountID: source,
		TargetAccountID: target,
		Timestamp:       timestamp,
		Money:           money,
	}
}

// NewPersistedActivity reconstitutes an Activity that already has an id.
func NewPersistedActivity(id ActivityID, owner, source, target AccountID, timestamp time.Time, money Money) Activity {
	return Activity{
		ID:              &id,
		OwnerAccountID:  owner,
		SourceAccountID: source,
		TargetAccountID: target,
		Timestamp:       timestamp,
		Money:           money,
	}
}
