package db

import (
	"github.com/organizo-app/organizo/internal/models"
	"gorm.io/gorm"
)

type AnnotationRepository struct {
	database *gorm.DB
}

func NewAnnotationRepository(database *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{database: database}
}

func (repo *AnnotationRepository) ListByUser(userID uint) ([]models.Annotation, error) {
	annotations := make([]models.Annotation, 0)
	if err := repo.database.
		Where("usuario_id = ?", userID).
		Order("id DESC").
		Find(&annotations).Error; err != nil {
		return nil, err
	}
	return annotations, nil
}

func (repo *AnnotationRepository) FindByIDForUser(annotationID uint, userID uint) (models.Annotation, error) {
	var annotation models.Annotation
	if err := repo.database.
		Where("id = ? AND usuario_id = ?", annotationID, userID).
		First(&annotation).Error; err != nil {
		return models.Annotation{}, err
	}
	return annotation, nil
}

func (repo *AnnotationRepository) Create(annotation *models.Annotation) error {
	return repo.database.Create(annotation).Error
}

func (repo *AnnotationRepository) Save(annotation *models.Annotation) error {
	return repo.database.Save(annotation).Error
}

func (repo *AnnotationRepository) Delete(annotationID uint, userID uint) (int64, error) {
	result := repo.database.Where("usuario_id = ?", userID).Delete(&models.Annotation{}, annotationID)
	return result.RowsAffected, result.Error
}
