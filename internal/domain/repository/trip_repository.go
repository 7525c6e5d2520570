package repository

import "github.com/maxjack20001-bot/logistics-system/internal/domain/entity"

// TripRepository define el puerto de persistencia para Trip (DIP).
type TripRepository interface {
	Create(trip *entity.Trip) error
	GetByID(id string) (*entity.Trip, error)
	List(limit, offset int) ([]*entity.Trip, error)
	UpdateStatus(id, status string) error
}
