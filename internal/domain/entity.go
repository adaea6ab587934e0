package domain

// EntityMenuItem is the only entity type the dialogue core acts on.
// Every other type is carried along for information only.
const (
	EntityMenuItem = "MENU_ITEM"
	EntityNumber   = "NUMBER"
)

type Entity struct {
	Type       string
	Text       string
	Normalized string
}

// NormalizedOfType returns the normalized text of every entity of type t,
// in extraction order.
func NormalizedOfType(entities []Entity, t string) []string {
	var out []string
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e.Normalized)
		}
	}
	return out
}
