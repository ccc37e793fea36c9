package db

import (
	"github.com/organizo-app/organizo/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

// ListNewestFirst returns every stored task ordered newest-first by id.
// The legacy API exposes the global set, not a per-user slice.
func (repo *TaskRepository) ListNewestFirst() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Preload("Tags").
		Preload("Subtarefas").
		Order("id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.
		Preload("Tags").
		Preload("Subtarefas").
		First(&task, taskID).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repo *TaskRepository) FindManyByIDs(taskIDs []uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(taskIDs))
	if len(taskIDs) == 0 {
		return tasks, nil
	}
	if err := repo.database.Where("id IN ?", taskIDs).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Omit("Tags", "Subtarefas").Save(task).Error
}

func (repo *TaskRepository) Delete(taskID uint) error {
	return repo.database.Delete(&models.Task{}, taskID).Error
}

func (repo *TaskRepository) UpdateAttachment(taskID uint, relativePath string) error {
	return repo.database.Model(&models.Task{}).Where("id = ?", taskID).Update("anexo", relativePath).Error
}

// FindOrCreateTagsByName resolves tag names to records, creating unseen ones.
func (repo *TaskRepository) FindOrCreateTagsByName(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := repo.database.Where("nome = ?", name).FirstOrCreate(&tag, models.Tag{Nome: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (repo *TaskRepository) ReplaceTags(task *models.Task, tags []models.Tag) error {
	return repo.database.Model(task).Association("Tags").Replace(tags)
}

func (repo *TaskRepository) ReplaceSubtasks(task *models.Task, subtasks []models.Task) error {
	return repo.database.Model(task).Association("Subtarefas").Replace(subtasks)
}
