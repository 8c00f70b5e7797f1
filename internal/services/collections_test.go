package services

import (
	"context"
	"testing"

	"workshelf/internal/models"
)

// Мок-репозиторий навыков: запоминает, с чем вызвали Replace.
type mockSkillRepo struct {
	existingIDs []int64

	lastProfileID int64
	lastDeleteIDs []int64
	lastItems     []*models.Skill
	replaceCalls  int
}

func (m *mockSkillRepo) ListByProfile(_ context.Context, _ int64) ([]*models.Skill, error) {
	return nil, nil
}

func (m *mockSkillRepo) ListIDsByProfile(_ context.Context, _ int64) ([]int64, error) {
	return m.existingIDs, nil
}

func (m *mockSkillRepo) Replace(_ context.Context, profileID int64, deleteIDs []int64, items []*models.Skill) error {
	m.replaceCalls++
	m.lastProfileID = profileID
	m.lastDeleteIDs = deleteIDs
	m.lastItems = items
	return nil
}

func (m *mockSkillRepo) Delete(_ context.Context, _, _ int64) error { return nil }

func newSkillOnlyService(repo *mockSkillRepo) *CollectionService {
	return NewCollectionService(repo, nil, nil, nil, nil)
}

func intPtr(v int) *int { return &v }

func TestReplaceSkills_Normalization(t *testing.T) {
	repo := &mockSkillRepo{}
	service := newSkillOnlyService(repo)

	inputs := []models.SkillInput{
		{Name: "  Go  ", Proficiency: 150},
		{Name: "   "}, // без имени — отбрасывается
		{Name: "SQL", Proficiency: -5},
		{Name: "Docker", Proficiency: 60, Order: intPtr(10)},
	}

	if err := service.ReplaceSkills(context.Background(), 1, inputs); err != nil {
		t.Fatalf("ошибка замены навыков: %v", err)
	}

	if len(repo.lastItems) != 3 {
		t.Fatalf("пустое имя должно отброситься: ожидалось 3 записи, получено %d", len(repo.lastItems))
	}
	if repo.lastItems[0].Name != "Go" {
		t.Fatalf("имя должно быть обрезано, получено %q", repo.lastItems[0].Name)
	}
	if repo.lastItems[0].Proficiency != 100 {
		t.Fatalf("proficiency 150 должен ужаться до 100, получено %d", repo.lastItems[0].Proficiency)
	}
	if repo.lastItems[1].Proficiency != 0 {
		t.Fatalf("proficiency -5 должен подняться до 0, получено %d", repo.lastItems[1].Proficiency)
	}
	// Порядок: без явного order берётся позиция во входе, явный сохраняется.
	if repo.lastItems[0].Position != 0 || repo.lastItems[1].Position != 2 {
		t.Fatalf("порядок по умолчанию должен совпадать с позицией во входе: %d, %d",
			repo.lastItems[0].Position, repo.lastItems[1].Position)
	}
	if repo.lastItems[2].Position != 10 {
		t.Fatalf("явный order должен сохраниться, получено %d", repo.lastItems[2].Position)
	}
	for _, it := range repo.lastItems {
		if it.ProfileID != 1 {
			t.Fatalf("profile_id должен проставляться сервисом, получено %d", it.ProfileID)
		}
	}
}

func TestReplaceSkills_DiffAgainstExisting(t *testing.T) {
	repo := &mockSkillRepo{existingIDs: []int64{1, 2, 3}}
	service := newSkillOnlyService(repo)

	inputs := []models.SkillInput{
		{ID: 2, Name: "Go", Proficiency: 80}, // обновление
		{Name: "Rust", Proficiency: 40},      // вставка
	}

	if err := service.ReplaceSkills(context.Background(), 1, inputs); err != nil {
		t.Fatalf("ошибка замены навыков: %v", err)
	}

	if len(repo.lastDeleteIDs) != 2 {
		t.Fatalf("не присланные строки должны удаляться: ожидалось 2 id, получено %v", repo.lastDeleteIDs)
	}
	got := map[int64]bool{}
	for _, id := range repo.lastDeleteIDs {
		got[id] = true
	}
	if !got[1] || !got[3] {
		t.Fatalf("удаляться должны id 1 и 3, получено %v", repo.lastDeleteIDs)
	}
	if repo.lastItems[0].ID != 2 {
		t.Fatalf("существующий id должен сохраниться, получено %d", repo.lastItems[0].ID)
	}
	if repo.lastItems[1].ID != 0 {
		t.Fatalf("новая запись должна идти со свежим id, получено %d", repo.lastItems[1].ID)
	}
}

func TestReplaceSkills_ForeignIDBecomesInsert(t *testing.T) {
	// id чужого профиля не должен превратиться в UPDATE чужой строки.
	repo := &mockSkillRepo{existingIDs: []int64{5}}
	service := newSkillOnlyService(repo)

	inputs := []models.SkillInput{
		{ID: 99, Name: "Go", Proficiency: 80},
	}

	if err := service.ReplaceSkills(context.Background(), 1, inputs); err != nil {
		t.Fatalf("ошибка замены навыков: %v", err)
	}

	if repo.lastItems[0].ID != 0 {
		t.Fatalf("чужой id должен обнуляться и становиться вставкой, получено %d", repo.lastItems[0].ID)
	}
	if len(repo.lastDeleteIDs) != 1 || repo.lastDeleteIDs[0] != 5 {
		t.Fatalf("свои не присланные строки должны удаляться, получено %v", repo.lastDeleteIDs)
	}
}

func TestReplaceSkills_IdempotentReplay(t *testing.T) {
	// Повтор того же списка с теми же id не создаёт ни удалений, ни вставок.
	repo := &mockSkillRepo{existingIDs: []int64{1, 2}}
	service := newSkillOnlyService(repo)

	inputs := []models.SkillInput{
		{ID: 1, Name: "Go", Proficiency: 80},
		{ID: 2, Name: "SQL", Proficiency: 70},
	}

	if err := service.ReplaceSkills(context.Background(), 1, inputs); err != nil {
		t.Fatalf("ошибка замены навыков: %v", err)
	}

	if len(repo.lastDeleteIDs) != 0 {
		t.Fatalf("повтор списка не должен ничего удалять, получено %v", repo.lastDeleteIDs)
	}
	for i, it := range repo.lastItems {
		if it.ID == 0 {
			t.Fatalf("повтор списка не должен создавать вставки, элемент %d", i)
		}
	}
}

func TestReplaceSkills_EmptyListClearsAll(t *testing.T) {
	repo := &mockSkillRepo{existingIDs: []int64{1, 2, 3}}
	service := newSkillOnlyService(repo)

	if err := service.ReplaceSkills(context.Background(), 1, nil); err != nil {
		t.Fatalf("ошибка замены навыков: %v", err)
	}

	if len(repo.lastDeleteIDs) != 3 {
		t.Fatalf("пустой список должен снести все строки, получено %v", repo.lastDeleteIDs)
	}
	if len(repo.lastItems) != 0 {
		t.Fatalf("пустой список не должен ничего вставлять, получено %d", len(repo.lastItems))
	}
	if repo.replaceCalls != 1 {
		t.Fatalf("Replace должен вызываться ровно один раз, получено %d", repo.replaceCalls)
	}
}

// Мок-репозиторий языков: запоминает, с чем вызвали Replace.
type mockLanguageRepo struct {
	existingIDs []int64

	lastDeleteIDs []int64
	lastItems     []*models.Language
}

func (m *mockLanguageRepo) ListByProfile(_ context.Context, _ int64) ([]*models.Language, error) {
	return nil, nil
}

func (m *mockLanguageRepo) ListIDsByProfile(_ context.Context, _ int64) ([]int64, error) {
	return m.existingIDs, nil
}

func (m *mockLanguageRepo) Replace(_ context.Context, _ int64, deleteIDs []int64, items []*models.Language) error {
	m.lastDeleteIDs = deleteIDs
	m.lastItems = items
	return nil
}

func TestReplaceLanguages_LevelCanonicalization(t *testing.T) {
	repo := &mockLanguageRepo{}
	service := NewCollectionService(nil, repo, nil, nil, nil)

	inputs := []models.LanguageInput{
		{Name: "English", Level: " c1 "},
		{Name: "German", Level: "FLUENT"},
		{Name: "Dutch", Level: "conversational"}, // нет в справочнике
		{Name: "Russian", Level: "", IsNative: true},
	}

	if err := service.ReplaceLanguages(context.Background(), 1, inputs); err != nil {
		t.Fatalf("ошибка замены языков: %v", err)
	}

	if len(repo.lastItems) != 4 {
		t.Fatalf("ожидалось 4 языка, получено %d", len(repo.lastItems))
	}
	want := []string{"C1", "fluent", "conversational", ""}
	for i, lvl := range want {
		if repo.lastItems[i].Level != lvl {
			t.Fatalf("уровень %d: ожидалось %q, получено %q", i, lvl, repo.lastItems[i].Level)
		}
	}
	if !repo.lastItems[3].IsNative {
		t.Fatalf("флаг родного языка потерян")
	}
}
