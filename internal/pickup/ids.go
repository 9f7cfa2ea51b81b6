package pickup

import (
	"regexp"
	"strings"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// CleanID убирает из id все, кроме букв, цифр, подчеркиваний и пробелов, а пробелы заменяет на дефисы.
func CleanID(id string) string {
	return strings.Join(strings.Split(nonWord.ReplaceAllString(id, ""), " "), "-")
}

func ConfirmButtonID(selected *entities.PickupOption) string {
	if selected == nil {
		return ""
	}
	return "confirm-pickup-" + CleanID(selected.ID)
}
