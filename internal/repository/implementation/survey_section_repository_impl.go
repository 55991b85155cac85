package implementation

import (
	"context"
	"errors"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/mapper"
	"onboarding-survey-be/internal/model"
	"onboarding-survey-be/internal/repository/contract"
	"onboarding-survey-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveySectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveySectionMapper
}

func NewSurveySectionRepository(db *gorm.DB) contract.SurveySectionRepository {
	return &SurveySectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveySectionMapper(),
	}
}

func (r *SurveySectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SurveySectionRepositoryImpl) Create(ctx context.Context, edge *entity.SurveySection) error {
	m := r.mapper.ToModel(edge)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*edge = *r.mapper.ToEntity(m)
	return nil
}

func (r *SurveySectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SurveySection{}, id).Error
}

func (r *SurveySectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveySection, error) {
	var m model.SurveySection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SurveySectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveySection, error) {
	var models []*model.SurveySection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SurveySectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SurveySection{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
