package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/maxjack20001-bot/logistics-system/internal/application/dto"
	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

// TripUseCase casos de uso para viajes de reparto.
type TripUseCase struct {
	repo repository.TripRepository
}

// NewTripUseCase construye el caso de uso.
func NewTripUseCase(repo repository.TripRepository) *TripUseCase {
	return &TripUseCase{repo: repo}
}

// Create crea un viaje; sin estado explícito queda en "pendiente".
func (uc *TripUseCase) Create(in dto.CreateTripRequest) (*dto.TripResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.TripStatusPendiente
	}
	now := time.Now()
	trip := &entity.Trip{
		ID:        uuid.New().String(),
		OrderID:   in.OrderID,
		Vehicle:   in.Vehicle,
		Driver:    in.Driver,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(trip); err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// GetByID obtiene un viaje por ID.
func (uc *TripUseCase) GetByID(id string) (*dto.TripResponse, error) {
	trip, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, domain.ErrNotFound
	}
	return toTripResponse(trip), nil
}

// List lista viajes con paginación, recientes primero.
func (uc *TripUseCase) List(limit, offset int) (*dto.TripListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TripResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTripResponse(t))
	}
	return &dto.TripListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de un viaje existente.
func (uc *TripUseCase) UpdateStatus(id string, in dto.UpdateTripStatusRequest) (*dto.TripResponse, error) {
	trip, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	trip.Status = in.Status
	trip.UpdatedAt = time.Now()
	return toTripResponse(trip), nil
}

func toTripResponse(t *entity.Trip) *dto.TripResponse {
	return &dto.TripResponse{
		ID:        t.ID,
		OrderID:   t.OrderID,
		Vehicle:   t.Vehicle,
		Driver:    t.Driver,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
