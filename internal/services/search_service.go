package services

import (
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

// SearchService answers the global search box across customers,
// trainers and trainings.
type SearchService struct {
	customerRepo repositories.CustomerRepository
	trainerRepo  repositories.TrainerRepository
	trainingRepo repositories.TrainingRepository
}

func NewSearchService(
	customerRepo repositories.CustomerRepository,
	trainerRepo repositories.TrainerRepository,
	trainingRepo repositories.TrainingRepository,
) *SearchService {
	return &SearchService{
		customerRepo: customerRepo,
		trainerRepo:  trainerRepo,
		trainingRepo: trainingRepo,
	}
}

type SearchResults struct {
	Customers []models.Customer `json:"customers"`
	Trainers  []models.Trainer  `json:"trainers"`
	Trainings []models.Training `json:"trainings"`
}

const searchSectionLimit = 10

// Search runs the query against all three entity types. Each section is
// capped; an empty query returns empty results.
func (s *SearchService) Search(query string) (*SearchResults, error) {
	results := &SearchResults{
		Customers: []models.Customer{},
		Trainers:  []models.Trainer{},
		Trainings: []models.Training{},
	}
	if query == "" {
		return results, nil
	}

	customers, _, err := s.customerRepo.FindAll(query, searchSectionLimit, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	results.Customers = customers

	trainers, _, err := s.trainerRepo.FindAll(query, searchSectionLimit, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	results.Trainers = trainers

	trainings, _, err := s.trainingRepo.FindAll(repositories.TrainingFilter{
		Search: query,
		Limit:  searchSectionLimit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	results.Trainings = trainings

	return results, nil
}
