package domain

type Comment struct {
	Id           string   `gorm:"primaryKey;size:64" json:"id"`
	UserId       string   `gorm:"size:64;not null" json:"userId"`
	RestaurantId string   `gorm:"size:64;index;not null" json:"restaurantId"`
	Rating       float64  `json:"rating"`
	Text         string   `json:"text"`
	Images       []string `gorm:"serializer:json" json:"images,omitempty"`
	Likes        int      `json:"likes"`
	Replies      []Reply  `gorm:"serializer:json" json:"replies,omitempty"`
	CreatedAt    string   `gorm:"size:40" json:"createdAt"` // RFC 3339
	UpdatedAt    string   `gorm:"size:40" json:"updatedAt,omitempty"`
}

type Reply struct {
	Id        string `json:"id"`
	UserId    string `json:"userId"`
	Text      string `json:"text"`
	Likes     int    `json:"likes"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
