package services

import (
	"encoding/json"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationPusher delivers a notification to a connected client in
// real time. The websocket hub implements it; a nil pusher means no
// live delivery, persistence alone.
type NotificationPusher interface {
	Push(userID string, notification dto.NotificationResponse)
}

type NotificationService interface {
	// Notify persists a notification and pushes it to the recipient.
	// Other services call it for their side effects; a failure here
	// must not fail the caller's main operation.
	Notify(db *gorm.DB, userID string, kind models.NotificationType, title, message string, data map[string]interface{}) error

	GetUserNotifications(db *gorm.DB, userID string, query dto.NotificationListQuery) (*dto.NotificationListResponse, error)
	GetUnreadCount(db *gorm.DB, userID string) (int64, error)
	MarkAsRead(db *gorm.DB, userID, notificationID string) error
	MarkAllAsRead(db *gorm.DB, userID string) (int64, error)
	DeleteNotification(db *gorm.DB, userID, notificationID string) error

	// SetPusher attaches the live delivery channel. Called once during
	// wiring, after the websocket hub exists.
	SetPusher(pusher NotificationPusher)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	pusher           NotificationPusher
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) SetPusher(pusher NotificationPusher) {
	s.pusher = pusher
}

func (s *notificationService) Notify(db *gorm.DB, userID string, kind models.NotificationType, title, message string, data map[string]interface{}) error {
	notification := &models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	}

	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return err
		}
		notification.Data = datatypes.JSON(payload)
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		return err
	}

	if s.pusher != nil {
		s.pusher.Push(userID, dto.NewNotificationResponse(notification))
	}
	return nil
}

func (s *notificationService) GetUserNotifications(db *gorm.DB, userID string, query dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	query.Normalize()

	notifications, total, err := s.notificationRepo.ListByUser(db, userID, query.UnreadOnly, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
		Page:          query.Page,
		PageSize:      query.PageSize,
		TotalPages:    dto.TotalPages(total, query.PageSize),
	}, nil
}

func (s *notificationService) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkAsRead(db *gorm.DB, userID, notificationID string) error {
	notification, err := s.findOwned(db, userID, notificationID)
	if err != nil {
		return err
	}
	if notification.IsRead {
		return nil
	}
	if err := s.notificationRepo.MarkRead(db, notification.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(db *gorm.DB, userID string) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *notificationService) DeleteNotification(db *gorm.DB, userID, notificationID string) error {
	notification, err := s.findOwned(db, userID, notificationID)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(db, notification.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwned loads a notification and verifies the caller owns it.
// Foreign notifications are reported as not found rather than
// forbidden, so their existence leaks nothing.
func (s *notificationService) findOwned(db *gorm.DB, userID, notificationID string) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(db, notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return nil, apperrors.ErrNotFound(repositories.ErrNotificationNotFound)
	}
	return notification, nil
}

// notifyQuietly is the fire-and-forget variant other services use for
// their side-effect notifications.
func notifyQuietly(s NotificationService, db *gorm.DB, userID string, kind models.NotificationType, title, message string, data map[string]interface{}) {
	if err := s.Notify(db, userID, kind, title, message, data); err != nil {
		logger.WithError(err).Warn("Failed to create notification", "user_id", userID, "type", string(kind))
	}
}
