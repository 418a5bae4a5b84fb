package domain

type Category struct {
	Id    string `gorm:"primaryKey;size:64" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Icon  string `gorm:"size:100" json:"icon"`
	Color string `gorm:"size:50" json:"color"`
}
