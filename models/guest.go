package models

import "time"

// NotificationPrefs are the per-guest delivery toggles. Actual delivery goes
// through the external notification collaborator; the platform only stores
// and honors the preferences.
type NotificationPrefs struct {
	Email         bool `bson:"email" json:"email"`
	SMS           bool `bson:"sms" json:"sms"`
	StayReminders bool `bson:"stay_reminders" json:"stay_reminders"`
	Promotions    bool `bson:"promotions" json:"promotions"`
}

// DefaultNotificationPrefs are applied to newly created guests: transactional
// email and stay reminders on, everything else opt-in.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{Email: true, StayReminders: true}
}

// Guest is a resort guest profile. Identity and sessions are owned by the
// external auth collaborator; this record carries contact details and
// preferences only.
type Guest struct {
	ID        string            `bson:"id" json:"id"`
	Name      string            `bson:"name" json:"name"`
	Email     string            `bson:"email" json:"email"`
	Phone     string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Prefs     NotificationPrefs `bson:"prefs" json:"prefs"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time         `bson:"updated_at" json:"updated_at"`
}
