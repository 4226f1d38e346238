package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
)

type PlayerService interface {
	CreatePlayers(firstName, secondName string, firstChip entity.Chip) (*entity.Player, *entity.Player, error)
}

type playerService struct {
	validate *validator.Validate
}

func NewPlayerService() PlayerService {
	return &playerService{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreatePlayers - the second player always gets the chip the first one did not pick.
func (that *playerService) CreatePlayers(firstName, secondName string, firstChip entity.Chip) (*entity.Player, *entity.Player, error) {
	first, err := that.newPlayer(firstName, firstChip)
	if err != nil {
		return nil, nil, fmt.Errorf("create first player: %w", err)
	}

	second, err := that.newPlayer(secondName, firstChip.Other())
	if err != nil {
		return nil, nil, fmt.Errorf("create second player: %w", err)
	}

	return first, second, nil
}

func (that *playerService) newPlayer(name string, chip entity.Chip) (*entity.Player, error) {
	player := &entity.Player{
		ID:   uuid.NewString(),
		Name: name,
		Chip: chip,
	}

	if err := that.validate.Struct(player); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidPlayer, err)
	}

	return player, nil
}
