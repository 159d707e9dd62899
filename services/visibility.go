package services

import "github.com/gracehq/prayerhub/models"

// CanViewPrayerRequest decides whether a user may read a request. The rule
// is closed: an unknown visibility value denies access.
//
//	PUBLIC      anyone
//	PRIVATE     the author only
//	GROUP_ONLY  members of the attached group
//	ADMIN_ONLY  the author only
//
// Admin status grants no extra read access here; moderation deletes go
// through the admin surface without reading the body. The same predicate
// is encoded in SQL by PrayerRequestRepository.FindVisibleToUser, so a
// request is in the feed exactly when it can be opened.
func CanViewPrayerRequest(request *models.PrayerRequest, userID uint, isMember bool) bool {
	switch request.Visibility {
	case models.VisibilityPublic:
		return true
	case models.VisibilityPrivate:
		return request.AuthorID == userID
	case models.VisibilityGroupOnly:
		return request.GroupID != nil && isMember
	case models.VisibilityAdminOnly:
		return request.AuthorID == userID
	default:
		return false
	}
}
