package results

import "strings"

// keySeparator joins the identity triple into a store key.
const keySeparator = "_"

// Identity is the name triple results are keyed by.
type Identity struct {
	Name       string
	Surname    string
	Patronymic string
}

// Complete reports whether all three fields are filled in.
func (id Identity) Complete() bool {
	return strings.TrimSpace(id.Name) != "" &&
		strings.TrimSpace(id.Surname) != "" &&
		strings.TrimSpace(id.Patronymic) != ""
}

// Key returns the store key for id.
func (id Identity) Key() string {
	return KeyFor(id.Surname, id.Name, id.Patronymic)
}

// DisplayName renders the identity the way the result screens show it.
func (id Identity) DisplayName() string {
	return strings.Join([]string{id.Name, id.Surname, id.Patronymic}, " ")
}

// KeyFor derives the store key for a name triple. Distinct people with the
// same triple share a key.
func KeyFor(surname, name, patronymic string) string {
	return surname + keySeparator + name + keySeparator + patronymic
}
