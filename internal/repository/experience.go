package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExperienceRepository struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

const experienceColumns = `id, profile_id, title, company, company_logo_url,
	is_consultancy, client, client_logo_url,
	start_date, end_date, is_current, description, created_at, updated_at`

func scanExperience(row pgx.Row) (*models.Experience, error) {
	var e models.Experience
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.CompanyLogoURL,
		&e.IsConsultancy, &e.Client, &e.ClientLogoURL,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByProfile возвращает опыт с задачами и технологиями:
// текущие позиции первыми, дальше по убыванию даты начала.
func (r *ExperienceRepository) ListByProfile(ctx context.Context, profileID int64) ([]*models.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+experienceColumns+`
		 FROM experiences
		 WHERE profile_id = $1
		 ORDER BY is_current DESC, start_date DESC`, profileID)
	if err != nil {
		logger.Log.Error("Ошибка выборки опыта (repo)", zap.Error(err), zap.Int64("profile_id", profileID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range out {
		if e.Tasks, err = r.listTasks(ctx, e.ID); err != nil {
			return nil, err
		}
		if e.Technologies, err = r.listTechnologies(ctx, e.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ExperienceRepository) listTasks(ctx context.Context, experienceID int64) ([]models.ExperienceTask, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, experience_id, text, position
		FROM experience_tasks
		WHERE experience_id = $1
		ORDER BY position ASC
	`, experienceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.ExperienceTask{}
	for rows.Next() {
		var t models.ExperienceTask
		if err := rows.Scan(&t.ID, &t.ExperienceID, &t.Text, &t.Position); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *ExperienceRepository) listTechnologies(ctx context.Context, experienceID int64) ([]models.Technology, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.name, t.icon_url
		FROM experience_technologies et
		JOIN technologies t ON t.id = et.technology_id
		WHERE et.experience_id = $1
		ORDER BY t.name ASC
	`, experienceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	techs := []models.Technology{}
	for rows.Next() {
		var t models.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.IconURL); err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

// Save создаёт или обновляет опыт одной транзакцией: базовые поля, полная
// замена задач в заданном порядке, дозапись новых технологий в общий каталог
// и пересборка связей.
func (r *ExperienceRepository) Save(ctx context.Context, e *models.Experience, tasks []string, technologies []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if e.ID > 0 {
		err = tx.QueryRow(ctx, `
			UPDATE experiences
			SET title = $1, company = $2, company_logo_url = $3,
			    is_consultancy = $4, client = $5, client_logo_url = $6,
			    start_date = $7, end_date = $8, is_current = $9,
			    description = $10, updated_at = now()
			WHERE id = $11 AND profile_id = $12
			RETURNING created_at, updated_at
		`, e.Title, e.Company, e.CompanyLogoURL,
			e.IsConsultancy, e.Client, e.ClientLogoURL,
			e.StartDate, e.EndDate, e.IsCurrent,
			e.Description, e.ID, e.ProfileID,
		).Scan(&e.CreatedAt, &e.UpdatedAt)
		if err == nil {
			_, err = tx.Exec(ctx, `DELETE FROM experience_tasks WHERE experience_id = $1`, e.ID)
		}
		if err == nil {
			_, err = tx.Exec(ctx, `DELETE FROM experience_technologies WHERE experience_id = $1`, e.ID)
		}
	} else {
		err = tx.QueryRow(ctx, `
			INSERT INTO experiences
				(profile_id, title, company, company_logo_url,
				 is_consultancy, client, client_logo_url,
				 start_date, end_date, is_current, description)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			RETURNING id, created_at, updated_at
		`, e.ProfileID, e.Title, e.Company, e.CompanyLogoURL,
			e.IsConsultancy, e.Client, e.ClientLogoURL,
			e.StartDate, e.EndDate, e.IsCurrent, e.Description,
		).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	}
	if err != nil {
		logger.Log.Error("Ошибка сохранения опыта (repo)", zap.Error(err), zap.Int64("profile_id", e.ProfileID))
		return err
	}

	e.Tasks = make([]models.ExperienceTask, 0, len(tasks))
	for i, text := range tasks {
		var t models.ExperienceTask
		t.ExperienceID = e.ID
		t.Text = text
		t.Position = i
		if err := tx.QueryRow(ctx, `
			INSERT INTO experience_tasks (experience_id, text, position)
			VALUES ($1, $2, $3)
			RETURNING id
		`, e.ID, text, i).Scan(&t.ID); err != nil {
			logger.Log.Error("Ошибка записи задачи опыта (repo)", zap.Error(err))
			return err
		}
		e.Tasks = append(e.Tasks, t)
	}

	e.Technologies = make([]models.Technology, 0, len(technologies))
	for _, name := range technologies {
		var tech models.Technology
		// Каталог общий: при гонке по имени берём существующую строку.
		if err := tx.QueryRow(ctx, `
			INSERT INTO technologies (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, name, icon_url
		`, name).Scan(&tech.ID, &tech.Name, &tech.IconURL); err != nil {
			logger.Log.Error("Ошибка апсерта технологии (repo)", zap.Error(err), zap.String("name", name))
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO experience_technologies (experience_id, technology_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, e.ID, tech.ID); err != nil {
			return err
		}
		e.Technologies = append(e.Technologies, tech)
	}

	return tx.Commit(ctx)
}

func (r *ExperienceRepository) Delete(ctx context.Context, profileID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		logger.Log.Error("Ошибка удаления опыта (repo)", zap.Error(err), zap.Int64("experience_id", id))
	}
	return err
}

func (r *ExperienceRepository) ListTechnologyNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM technologies ORDER BY name ASC`)
	if err != nil {
		logger.Log.Error("Ошибка выборки каталога технологий (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
