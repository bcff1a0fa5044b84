package validator

import (
	"ctchen222/tictactoe-cli/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("playermark", isPlayerMark); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// isPlayerMark accepts the letters a player can take: X or O.
func isPlayerMark(fl validator.FieldLevel) bool {
	return game.PlayerMark(fl.Field().String()).Valid()
}
