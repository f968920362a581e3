package models

// Review is a job seeker's rating of a company. One review per
// (company_id, user_id) pair. Secondary ratings are optional; zero
// means not rated.
type Review struct {
	BaseModel
	CompanyID          string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_company_user" json:"company_id"`
	UserID             string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_company_user" json:"user_id"`
	RatingOverall      int    `gorm:"not null;check:rating_overall >= 1 AND rating_overall <= 5" json:"rating_overall"`
	RatingWorkLife     int    `gorm:"check:rating_work_life >= 0 AND rating_work_life <= 5" json:"rating_work_life"`
	RatingCompensation int    `gorm:"check:rating_compensation >= 0 AND rating_compensation <= 5" json:"rating_compensation"`
	RatingCulture      int    `gorm:"check:rating_culture >= 0 AND rating_culture <= 5" json:"rating_culture"`
	Title              string `json:"title"`
	Pros               string `gorm:"type:text" json:"pros"`
	Cons               string `gorm:"type:text" json:"cons"`
	IsAnonymous        bool   `gorm:"default:false" json:"is_anonymous"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
