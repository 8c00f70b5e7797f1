package services

import (
	"context"
	"strings"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"go.uber.org/zap"
)

// CollectionService реализует replace-all запись дочерних коллекций профиля:
// после вызова в хранилище остаётся ровно присланный список. Diff считается
// здесь, применяется репозиторием одной транзакцией.
type CollectionService struct {
	skills     SkillRepo
	languages  LanguageRepo
	contacts   ContactRepo
	highlights HighlightRepo
	hobbies    HobbyRepo
}

type SkillRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Skill, error)
	ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error)
	Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.Skill) error
	Delete(ctx context.Context, profileID, id int64) error
}

type LanguageRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Language, error)
	ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error)
	Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.Language) error
}

type ContactRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.ContactMethod, error)
	ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error)
	Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.ContactMethod) error
}

type HighlightRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.ProfileHighlight, error)
	ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error)
	Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.ProfileHighlight) error
}

type HobbyRepo interface {
	ListByProfile(ctx context.Context, profileID int64) ([]*models.Hobby, error)
	ListIDsByProfile(ctx context.Context, profileID int64) ([]int64, error)
	Replace(ctx context.Context, profileID int64, deleteIDs []int64, items []*models.Hobby) error
}

func NewCollectionService(skills SkillRepo, languages LanguageRepo, contacts ContactRepo, highlights HighlightRepo, hobbies HobbyRepo) *CollectionService {
	return &CollectionService{
		skills:     skills,
		languages:  languages,
		contacts:   contacts,
		highlights: highlights,
		hobbies:    hobbies,
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// canonicalLanguageLevel приводит уровень к написанию из справочника.
// Неизвестный уровень сохраняется как прислали.
func canonicalLanguageLevel(level string) string {
	level = strings.TrimSpace(level)
	for _, known := range models.LanguageLevels {
		if strings.EqualFold(level, known) {
			return known
		}
	}
	return level
}

// reconcileIDs возвращает id на удаление и множество существующих строк.
// Чужие id гасятся на стороне вызывающего: id не из existing станет вставкой.
func reconcileIDs(existing []int64, incoming []int64) (toDelete []int64, existingSet map[int64]struct{}) {
	existingSet = make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}
	incomingSet := make(map[int64]struct{}, len(incoming))
	for _, id := range incoming {
		if id > 0 {
			incomingSet[id] = struct{}{}
		}
	}
	for _, id := range existing {
		if _, ok := incomingSet[id]; !ok {
			toDelete = append(toDelete, id)
		}
	}
	return toDelete, existingSet
}

// ---- Skills ----

func (s *CollectionService) ListSkills(ctx context.Context, profileID int64) ([]*models.Skill, error) {
	return s.skills.ListByProfile(ctx, profileID)
}

// ReplaceSkills: нормализация (пустые имена отбрасываем, proficiency в
// [0,100], order по позиции во входе), затем diff и одна транзакция.
func (s *CollectionService) ReplaceSkills(ctx context.Context, profileID int64, inputs []models.SkillInput) error {
	cleaned := make([]*models.Skill, 0, len(inputs))
	for idx, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			logger.Log.Warn("Навык без имени отброшен при нормализации",
				zap.Int64("profile_id", profileID), zap.Int("index", idx))
			continue
		}
		pos := idx
		if in.Order != nil {
			pos = *in.Order
		}
		cleaned = append(cleaned, &models.Skill{
			ID:          in.ID,
			ProfileID:   profileID,
			Name:        name,
			Proficiency: clamp(in.Proficiency, 0, 100),
			Icon:        in.Icon,
			Position:    pos,
		})
	}

	existing, err := s.skills.ListIDsByProfile(ctx, profileID)
	if err != nil {
		return err
	}

	incomingIDs := make([]int64, 0, len(cleaned))
	for _, c := range cleaned {
		incomingIDs = append(incomingIDs, c.ID)
	}
	toDelete, existingSet := reconcileIDs(existing, incomingIDs)

	// id, не принадлежащий профилю, превращаем во вставку — чужую строку
	// обновить невозможно.
	for _, c := range cleaned {
		if _, ok := existingSet[c.ID]; !ok {
			c.ID = 0
		}
	}

	logger.Log.Info("Замена навыков (service)",
		zap.Int64("profile_id", profileID),
		zap.Int("incoming", len(cleaned)),
		zap.Int("to_delete", len(toDelete)),
	)
	return s.skills.Replace(ctx, profileID, toDelete, cleaned)
}

func (s *CollectionService) DeleteSkill(ctx context.Context, profileID, id int64) error {
	logger.Log.Info("Удаление навыка (service)", zap.Int64("skill_id", id))
	return s.skills.Delete(ctx, profileID, id)
}

// ---- Languages ----

func (s *CollectionService) ListLanguages(ctx context.Context, profileID int64) ([]*models.Language, error) {
	return s.languages.ListByProfile(ctx, profileID)
}

func (s *CollectionService) ReplaceLanguages(ctx context.Context, profileID int64, inputs []models.LanguageInput) error {
	cleaned := make([]*models.Language, 0, len(inputs))
	for idx, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			logger.Log.Warn("Язык без имени отброшен при нормализации",
				zap.Int64("profile_id", profileID), zap.Int("index", idx))
			continue
		}
		cleaned = append(cleaned, &models.Language{
			ID:        in.ID,
			ProfileID: profileID,
			Name:      name,
			Level:     canonicalLanguageLevel(in.Level),
			IsNative:  in.IsNative,
		})
	}

	existing, err := s.languages.ListIDsByProfile(ctx, profileID)
	if err != nil {
		return err
	}
	incomingIDs := make([]int64, 0, len(cleaned))
	for _, c := range cleaned {
		incomingIDs = append(incomingIDs, c.ID)
	}
	toDelete, existingSet := reconcileIDs(existing, incomingIDs)
	for _, c := range cleaned {
		if _, ok := existingSet[c.ID]; !ok {
			c.ID = 0
		}
	}

	logger.Log.Info("Замена языков (service)",
		zap.Int64("profile_id", profileID),
		zap.Int("incoming", len(cleaned)),
		zap.Int("to_delete", len(toDelete)),
	)
	return s.languages.Replace(ctx, profileID, toDelete, cleaned)
}

// ---- Contacts ----

func (s *CollectionService) ListContacts(ctx context.Context, profileID int64) ([]*models.ContactMethod, error) {
	return s.contacts.ListByProfile(ctx, profileID)
}

func (s *CollectionService) ReplaceContacts(ctx context.Context, profileID int64, inputs []models.ContactMethodInput) error {
	known := make(map[string]struct{}, len(models.ContactTypes))
	for _, t := range models.ContactTypes {
		known[t] = struct{}{}
	}

	cleaned := make([]*models.ContactMethod, 0, len(inputs))
	for idx, in := range inputs {
		value := strings.TrimSpace(in.Value)
		if value == "" {
			logger.Log.Warn("Контакт без значения отброшен при нормализации",
				zap.Int64("profile_id", profileID), zap.Int("index", idx))
			continue
		}
		ctype := strings.ToLower(strings.TrimSpace(in.Type))
		if _, ok := known[ctype]; !ok {
			ctype = "other"
		}
		pos := idx
		if in.Order != nil {
			pos = *in.Order
		}
		cleaned = append(cleaned, &models.ContactMethod{
			ID:        in.ID,
			ProfileID: profileID,
			Type:      ctype,
			Value:     value,
			Label:     in.Label,
			Icon:      in.Icon,
			Position:  pos,
		})
	}

	existing, err := s.contacts.ListIDsByProfile(ctx, profileID)
	if err != nil {
		return err
	}
	incomingIDs := make([]int64, 0, len(cleaned))
	for _, c := range cleaned {
		incomingIDs = append(incomingIDs, c.ID)
	}
	toDelete, existingSet := reconcileIDs(existing, incomingIDs)
	for _, c := range cleaned {
		if _, ok := existingSet[c.ID]; !ok {
			c.ID = 0
		}
	}

	logger.Log.Info("Замена контактов (service)",
		zap.Int64("profile_id", profileID),
		zap.Int("incoming", len(cleaned)),
		zap.Int("to_delete", len(toDelete)),
	)
	return s.contacts.Replace(ctx, profileID, toDelete, cleaned)
}

// ---- Highlights ----

func (s *CollectionService) ListHighlights(ctx context.Context, profileID int64) ([]*models.ProfileHighlight, error) {
	return s.highlights.ListByProfile(ctx, profileID)
}

func (s *CollectionService) ReplaceHighlights(ctx context.Context, profileID int64, inputs []models.ProfileHighlightInput) error {
	cleaned := make([]*models.ProfileHighlight, 0, len(inputs))
	for idx, in := range inputs {
		title := strings.TrimSpace(in.Title)
		if title == "" {
			logger.Log.Warn("Хайлайт без заголовка отброшен при нормализации",
				zap.Int64("profile_id", profileID), zap.Int("index", idx))
			continue
		}
		pos := idx
		if in.Order != nil {
			pos = *in.Order
		}
		cleaned = append(cleaned, &models.ProfileHighlight{
			ID:        in.ID,
			ProfileID: profileID,
			Title:     title,
			Value:     strings.TrimSpace(in.Value),
			Icon:      in.Icon,
			Position:  pos,
		})
	}

	existing, err := s.highlights.ListIDsByProfile(ctx, profileID)
	if err != nil {
		return err
	}
	incomingIDs := make([]int64, 0, len(cleaned))
	for _, c := range cleaned {
		incomingIDs = append(incomingIDs, c.ID)
	}
	toDelete, existingSet := reconcileIDs(existing, incomingIDs)
	for _, c := range cleaned {
		if _, ok := existingSet[c.ID]; !ok {
			c.ID = 0
		}
	}

	logger.Log.Info("Замена хайлайтов (service)",
		zap.Int64("profile_id", profileID),
		zap.Int("incoming", len(cleaned)),
		zap.Int("to_delete", len(toDelete)),
	)
	return s.highlights.Replace(ctx, profileID, toDelete, cleaned)
}

// ---- Hobbies ----

func (s *CollectionService) ListHobbies(ctx context.Context, profileID int64) ([]*models.Hobby, error) {
	return s.hobbies.ListByProfile(ctx, profileID)
}

func (s *CollectionService) ReplaceHobbies(ctx context.Context, profileID int64, inputs []models.HobbyInput) error {
	cleaned := make([]*models.Hobby, 0, len(inputs))
	for idx, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			logger.Log.Warn("Хобби без имени отброшено при нормализации",
				zap.Int64("profile_id", profileID), zap.Int("index", idx))
			continue
		}
		cleaned = append(cleaned, &models.Hobby{
			ID:          in.ID,
			ProfileID:   profileID,
			Name:        name,
			Description: in.Description,
			Icon:        in.Icon,
		})
	}

	existing, err := s.hobbies.ListIDsByProfile(ctx, profileID)
	if err != nil {
		return err
	}
	incomingIDs := make([]int64, 0, len(cleaned))
	for _, c := range cleaned {
		incomingIDs = append(incomingIDs, c.ID)
	}
	toDelete, existingSet := reconcileIDs(existing, incomingIDs)
	for _, c := range cleaned {
		if _, ok := existingSet[c.ID]; !ok {
			c.ID = 0
		}
	}

	logger.Log.Info("Замена хобби (service)",
		zap.Int64("profile_id", profileID),
		zap.Int("incoming", len(cleaned)),
		zap.Int("to_delete", len(toDelete)),
	)
	return s.hobbies.Replace(ctx, profileID, toDelete, cleaned)
}
