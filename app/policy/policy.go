// Package policy holds the authorization decision functions. Every
// check is a pure function over the actor and the resource owner, with
// no side effects and no store access.
package policy

import "github.com/Frezz12/AchStudentsBackend/app/model"

// CanEditAchievement allows the catalog entry's creator or an admin.
// A nil creator (entry created before creators were tracked) means
// admin only.
func CanEditAchievement(actor model.Actor, creatorID *int64) bool {
	if actor.IsAdmin() {
		return true
	}
	return creatorID != nil && *creatorID == actor.ID
}

// CanDeleteAchievement follows the same rule as editing.
func CanDeleteAchievement(actor model.Actor, creatorID *int64) bool {
	return CanEditAchievement(actor, creatorID)
}

// CanGrantToOther allows curators and admins to create award records
// on behalf of a student.
func CanGrantToOther(actor model.Actor) bool {
	return actor.IsAdmin() || actor.IsCurator()
}

// CanReview allows the record's owner, curators, and admins to change
// an award's status. Note that this lets a student transition their own
// claim; that mirrors the observed rule set and is flagged in
// DESIGN.md.
func CanReview(actor model.Actor, ownerID int64) bool {
	return actor.ID == ownerID || actor.IsAdmin() || actor.IsCurator()
}

// CanDeleteAward allows the owning student or an admin. Curators may
// review but not delete.
func CanDeleteAward(actor model.Actor, ownerID int64) bool {
	return actor.ID == ownerID || actor.IsAdmin()
}

// CanManageUser allows a user to update or delete their own profile,
// and admins to manage anyone.
func CanManageUser(actor model.Actor, targetID int64) bool {
	return actor.ID == targetID || actor.IsAdmin()
}
