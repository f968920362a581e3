package models

// RecruiterProfile extends an employer user. One row per user.
type RecruiterProfile struct {
	BaseModel
	UserID         string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName    string `json:"company_name"`
	CompanyLogo    string `json:"company_logo"`
	Designation    string `json:"designation"`
	CompanyWebsite string `json:"company_website"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"company_size"`
	About          string `gorm:"type:text" json:"about"`
}
