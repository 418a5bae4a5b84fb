package domain

// Challenge is a single-use human-verification record. Consumption flips Used
// once; expired or consumed challenges never verify again.
type Challenge struct {
	ChallengeId string `gorm:"primaryKey;size:64" json:"challenge_id"`
	Value       string `gorm:"size:16;not null" json:"-"`
	CreatedAt   int64  `gorm:"not null" json:"created_at"` // epoch millis
	Used        bool   `gorm:"default:false" json:"used"`
}
