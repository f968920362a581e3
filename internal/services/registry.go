package services

import (
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/email"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	AdminService        AdminService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	SavedJobService     SavedJobService
	CompanyService      CompanyService
	ReviewService       ReviewService
	NotificationService NotificationService
	JobAlertService     JobAlertService
	ResumeService       ResumeService
	AdvisorService      AdvisorService
	EmailService        email.Provider
}
