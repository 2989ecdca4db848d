package forum

import (
	"context"

	"forumhub/internal/model"
)

// NewNotification holds the caller-supplied fields of a notification.
// The repository fills in id, timestamp and read state.
type NewNotification struct {
	Type    model.NotificationType `json:"type"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Link    string                 `json:"link"`
	Avatar  string                 `json:"avatar,omitempty"`
}

// NotificationRepository manages the current user's inbox.
type NotificationRepository struct {
	store  Store
	logger Logger
	idgen  IDGenerator
}

func NewNotificationRepository(store Store, logger Logger, idgen IDGenerator) *NotificationRepository {
	return &NotificationRepository{store: store, logger: logger, idgen: idgen}
}

// ListNotifications returns the inbox, newest first.
func (r *NotificationRepository) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	return r.load(ctx)
}

// AddNotification prepends an unread notification built from n.
func (r *NotificationRepository) AddNotification(ctx context.Context, n NewNotification) (model.Notification, error) {
	list, err := r.load(ctx)
	if err != nil {
		return model.Notification{}, err
	}

	if n.Type == "" {
		n.Type = model.NotificationSystem
	}
	created := model.Notification{
		ID:        "n-" + r.idgen.New(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: JustNow,
		IsRead:    false,
		Link:      n.Link,
		Avatar:    n.Avatar,
	}

	list = append([]model.Notification{created}, list...)
	if err := r.save(ctx, list); err != nil {
		return model.Notification{}, err
	}
	r.logger.Info("notification added", "notification_id", created.ID, "type", string(created.Type))
	return created, nil
}

// MarkAsRead marks the notification with the given id read and returns the
// updated inbox. An unknown id leaves the inbox as it was.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id string) ([]model.Notification, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].IsRead = true
		}
	}
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkAllAsRead marks every notification read and returns the inbox.
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context) ([]model.Notification, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].IsRead = true
	}
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	r.logger.Info("notifications marked read", "count", len(list))
	return list, nil
}

// ClearAll empties the inbox.
func (r *NotificationRepository) ClearAll(ctx context.Context) ([]model.Notification, error) {
	list := []model.Notification{}
	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	r.logger.Info("notifications cleared")
	return list, nil
}

// UnreadCount returns how many notifications have not been read.
func (r *NotificationRepository) UnreadCount(ctx context.Context) (int, error) {
	list, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return countUnread(list), nil
}

func countUnread(list []model.Notification) int {
	n := 0
	for _, item := range list {
		if !item.IsRead {
			n++
		}
	}
	return n
}

func (r *NotificationRepository) load(ctx context.Context) ([]model.Notification, error) {
	return Load(ctx, r.store, KeyNotifications, seedNotifications())
}

func (r *NotificationRepository) save(ctx context.Context, list []model.Notification) error {
	return Save(ctx, r.store, KeyNotifications, list)
}
