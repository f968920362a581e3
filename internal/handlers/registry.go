package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	AdminHandler        *AdminHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	SavedJobHandler     *SavedJobHandler
	ProfileHandler      *ProfileHandler
	CompanyHandler      *CompanyHandler
	ReviewHandler       *ReviewHandler
	NotificationHandler *NotificationHandler
	JobAlertHandler     *JobAlertHandler
	ResumeHandler       *ResumeHandler
	AIHandler           *AIHandler
	FileHandler         *FileHandler
}
