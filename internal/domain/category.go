package domain

import "github.com/lib/pq"

type Category struct {
	Model
	Slug        string         `db:"slug"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	IconName    string         `db:"icon_name"`
	ImageURL    string         `db:"image_url"`
	Tags        pq.StringArray `db:"tags"`
}

// IconNames is the closed set of icon keys a category may reference. The
// frontend maps each key onto a symbol; anything outside this set is
// rejected before persistence.
var IconNames = []string{
	"Zap",
	"FileText",
	"Scissors",
	"Video",
	"Code",
	"Star",
	"StarHalf",
	"CheckCircle",
}

func ValidIconName(name string) bool {
	for _, n := range IconNames {
		if n == name {
			return true
		}
	}
	return false
}
