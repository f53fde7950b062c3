package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/policy"
	"github.com/Frezz12/AchStudentsBackend/app/repo"
	"github.com/Frezz12/AchStudentsBackend/cache"
)

// AwardService owns the award-record lifecycle: self-claims, grants,
// review transitions, deletion, and the duplicate-pair invariant.
type AwardService struct {
	awards       repo.AwardRepository
	achievements repo.AchievementRepository
	users        repo.UserRepository
	evidence     repo.EvidenceRepository
	board        *cache.Leaderboard
}

func NewAwardService(
	awards repo.AwardRepository,
	achievements repo.AchievementRepository,
	users repo.UserRepository,
	evidence repo.EvidenceRepository,
	board *cache.Leaderboard,
) *AwardService {
	return &AwardService{
		awards:       awards,
		achievements: achievements,
		users:        users,
		evidence:     evidence,
		board:        board,
	}
}

// SelfClaim creates a pending award record for the acting student.
func (s *AwardService) SelfClaim(actor model.Actor, req model.ClaimRequest) (*model.StudentAchievement, error) {
	return s.create(actor.ID, req)
}

// Grant creates a pending award record for another student. Only
// curators and admins may do this; everything else matches SelfClaim.
func (s *AwardService) Grant(actor model.Actor, studentID int64, req model.ClaimRequest) (*model.StudentAchievement, error) {
	if !policy.CanGrantToOther(actor) {
		return nil, apperr.Forbiddenf("role %s cannot grant achievements", actor.Role)
	}
	if _, err := s.users.FindByID(studentID); err != nil {
		return nil, err
	}
	return s.create(studentID, req)
}

func (s *AwardService) create(studentID int64, req model.ClaimRequest) (*model.StudentAchievement, error) {
	if _, err := s.achievements.FindByID(req.AchievementID); err != nil {
		return nil, err
	}

	// Pre-check for the common uncontended case; the unique index on
	// (student_id, achievement_id) catches the race.
	_, err := s.awards.FindByPair(studentID, req.AchievementID)
	if err == nil {
		return nil, apperr.Conflictf("student %d already has achievement %d", studentID, req.AchievementID)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	sa := &model.StudentAchievement{
		StudentID:     studentID,
		AchievementID: req.AchievementID,
		Status:        model.StatusPending,
		Notes:         req.Notes,
		EvidenceURL:   req.EvidenceURL,
	}
	if err := s.awards.Create(sa); err != nil {
		return nil, err
	}
	return sa, nil
}

// Transition applies a status and/or notes/evidence update. Moving to a
// non-pending status stamps the actor as approver; re-affirming pending
// is a no-op transition, not an error. Any enumerated status may be
// written at any time by an authorized reviewer.
func (s *AwardService) Transition(actor model.Actor, id int64, req model.UpdateAwardRequest) (*model.StudentAchievement, error) {
	sa, err := s.awards.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReview(actor, sa.StudentID) {
		return nil, apperr.Forbiddenf("not allowed to update student achievement %d", id)
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperr.InvalidInputf("unknown status %q", *req.Status)
		}
		if *req.Status != model.StatusPending {
			approver := actor.ID
			sa.ApprovedByID = &approver
		}
		sa.Status = *req.Status
	}
	if req.Notes != nil {
		sa.Notes = *req.Notes
	}
	if req.EvidenceURL != nil {
		sa.EvidenceURL = *req.EvidenceURL
	}

	if err := s.awards.Update(sa); err != nil {
		return nil, err
	}
	s.refreshBoard(sa.StudentID)
	return sa, nil
}

// Delete removes the record. The owning student may delete their own;
// otherwise admin only.
func (s *AwardService) Delete(actor model.Actor, id int64) error {
	sa, err := s.awards.FindByID(id)
	if err != nil {
		return err
	}
	if !policy.CanDeleteAward(actor, sa.StudentID) {
		return apperr.Forbiddenf("not allowed to delete student achievement %d", id)
	}
	if err := s.awards.Delete(id); err != nil {
		return err
	}
	if s.evidence != nil {
		if err := s.evidence.DeleteByAward(sa.UUID); err != nil {
			log.Println("Failed to drop evidence for award", sa.UUID, ":", err)
		}
	}
	s.refreshBoard(sa.StudentID)
	return nil
}

func (s *AwardService) Get(id int64) (*model.StudentAchievement, error) {
	return s.awards.FindByID(id)
}

func (s *AwardService) GetByUUID(uid string) (*model.StudentAchievement, error) {
	return s.awards.FindByUUID(uid)
}

func (s *AwardService) List(filter model.AwardFilter) ([]model.StudentAchievement, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperr.InvalidInputf("unknown status %q", filter.Status)
	}
	return s.awards.Find(filter)
}

// AttachEvidence stores an attachment document for the record. Only the
// owning student may attach evidence to their claim.
func (s *AwardService) AttachEvidence(actor model.Actor, id int64, req model.AddEvidenceRequest) (*model.Evidence, error) {
	sa, err := s.awards.FindByID(id)
	if err != nil {
		return nil, err
	}
	if sa.StudentID != actor.ID {
		return nil, apperr.Forbiddenf("not allowed to attach evidence to student achievement %d", id)
	}

	e := model.Evidence{
		AwardUUID:  sa.UUID,
		FileName:   req.FileName,
		FileURL:    req.FileURL,
		FileType:   req.FileType,
		UploadedBy: actor.ID,
		UploadedAt: time.Now(),
	}
	if err := s.evidence.Add(e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *AwardService) ListEvidence(id int64) ([]model.Evidence, error) {
	sa, err := s.awards.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.evidence.FindByAward(sa.UUID)
}

// refreshBoard is best-effort: leaderboard staleness never fails a
// workflow operation.
func (s *AwardService) refreshBoard(studentID int64) {
	if s.board == nil {
		return
	}
	points, err := approvedPoints(s.awards, s.achievements, studentID)
	if err != nil {
		log.Println("Failed to recompute points for student", studentID, ":", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.board.SetStudent(ctx, studentID, points); err != nil {
		log.Println("Failed to update leaderboard for student", studentID, ":", err)
	}
}
