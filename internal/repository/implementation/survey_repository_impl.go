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

type SurveyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewSurveyRepository(db *gorm.DB) contract.SurveyRepository {
	return &SurveyRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *SurveyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SurveyRepositoryImpl) Create(ctx context.Context, survey *entity.Survey) error {
	m := r.mapper.ToModel(survey)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*survey = *r.mapper.ToEntity(m)
	return nil
}

func (r *SurveyRepositoryImpl) Update(ctx context.Context, survey *entity.Survey) error {
	m := r.mapper.ToModel(survey)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*survey = *r.mapper.ToEntity(m)
	return nil
}

func (r *SurveyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Survey{}, id).Error
}

func (r *SurveyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Survey, error) {
	var m model.Survey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SurveyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Survey, error) {
	var models []*model.Survey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SurveyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Survey{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
