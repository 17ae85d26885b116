package services

import (
	"time"

	"api/database"
	"api/logging"
	"api/metrics"
	"api/models"
	"api/realtime"
)

// DefaultNotificationTTL is how long a notification record is kept before
// the sweeper purges it
const DefaultNotificationTTL = 24 * time.Hour

// NotificationPublisher fans a notification record out to connected clients.
// Orchestration code only depends on this interface, not on the transport.
type NotificationPublisher interface {
	Publish(notification models.Notification)
}

type websocketPublisher struct{}

func (websocketPublisher) Publish(notification models.Notification) {
	realtime.BroadcastNotification(notification)
}

// Publisher is the active fan-out transport. Swappable in tests.
var Publisher NotificationPublisher = websocketPublisher{}

// Notify persists a notification record and fans it out to the league's
// connected clients. Fan-out failures are logged, never surfaced: the relay
// is best-effort and the record itself remains the source of truth.
func Notify(leagueID, notificationType, title, message string, targetUserID *string) {
	notification := models.Notification{
		LeagueID:     leagueID,
		Type:         notificationType,
		Title:        title,
		Message:      message,
		TargetUserID: targetUserID,
		ExpiresAt:    time.Now().Add(DefaultNotificationTTL),
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		logging.Log.Errorf("failed to persist %s notification for league %s: %v", notificationType, leagueID, err)
		return
	}

	metrics.NotificationsPublished.WithLabelValues(notificationType).Inc()
	Publisher.Publish(notification)
}

// ListNotifications returns the unexpired notifications of a league that are
// visible to the given user (broadcast ones plus those targeted at them)
func ListNotifications(leagueID, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := database.DB.
		Where("league_id = ? AND expires_at > ?", leagueID, time.Now()).
		Where("target_user_id IS NULL OR target_user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

// StartNotificationSweeper periodically deletes expired notification records
func StartNotificationSweeper(interval time.Duration) {
	go func() {
		for {
			time.Sleep(interval)
			result := database.DB.Where("expires_at < ?", time.Now()).Delete(&models.Notification{})
			if result.Error != nil {
				logging.Log.Errorf("notification sweep failed: %v", result.Error)
			} else if result.RowsAffected > 0 {
				logging.Log.Debugf("swept %d expired notifications", result.RowsAffected)
			}
		}
	}()
}
