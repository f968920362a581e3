package models

type UserRole string
type ApplicationStatus string
type JobType string
type WorkMode string
type AlertFrequency string
type NotificationType string
type VerificationStatus string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffered   ApplicationStatus = "offered"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"

	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"

	AlertFrequencyInstant AlertFrequency = "instant"
	AlertFrequencyDaily   AlertFrequency = "daily"
	AlertFrequencyWeekly  AlertFrequency = "weekly"

	NotificationTypeJobAlert            NotificationType = "job_alert"
	NotificationTypeApplicationStatus   NotificationType = "application_status"
	NotificationTypeProfileViewed       NotificationType = "profile_viewed"
	NotificationTypeJobPosted           NotificationType = "job_posted"
	NotificationTypeCompanyVerification NotificationType = "company_verification"
	NotificationTypeMessage             NotificationType = "message"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// applicationStatusRank orders the pipeline stages. Rejected sits outside
// the pipeline and is reachable from any non-terminal stage.
var applicationStatusRank = map[ApplicationStatus]int{
	ApplicationStatusApplied:   0,
	ApplicationStatusReviewed:  1,
	ApplicationStatusInterview: 2,
	ApplicationStatusOffered:   3,
	ApplicationStatusAccepted:  4,
}

func (s ApplicationStatus) Valid() bool {
	if s == ApplicationStatusRejected {
		return true
	}
	_, ok := applicationStatusRank[s]
	return ok
}

// Terminal reports whether no further transitions are allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransitionTo enforces forward-only movement through the pipeline.
// Any non-terminal status may move straight to rejected.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	if next == ApplicationStatusRejected {
		return true
	}
	return applicationStatusRank[next] > applicationStatusRank[s]
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleJobSeeker, UserRoleEmployer, UserRoleAdmin:
		return true
	}
	return false
}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeRemote, WorkModeOnsite, WorkModeHybrid:
		return true
	}
	return false
}

func (f AlertFrequency) Valid() bool {
	switch f {
	case AlertFrequencyInstant, AlertFrequencyDaily, AlertFrequencyWeekly:
		return true
	}
	return false
}
