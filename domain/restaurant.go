package domain

type Restaurant struct {
	Id            string    `gorm:"primaryKey;size:64" json:"id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	Image         []string  `gorm:"serializer:json" json:"image"`
	Rating        float64   `json:"rating"`
	Time          string    `gorm:"size:50" json:"time"`
	Price         string    `gorm:"size:50" json:"price"`
	Location      string    `gorm:"size:200" json:"location"`
	Description   string    `json:"description"`
	Category      string    `gorm:"size:64;index" json:"category"`
	IsHighlighted bool      `json:"isHighlighted"`
	Coordinates   *GeoPoint `gorm:"serializer:json" json:"coordinates,omitempty"`
	Features      []string  `gorm:"serializer:json" json:"features,omitempty"`
}
