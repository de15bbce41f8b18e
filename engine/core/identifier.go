package core

import "github.com/google/uuid"

// Identifier uniquely names an editor object, e.g. a sprite, across save files.
type Identifier string

func NewIdentifier() Identifier {
	return Identifier(uuid.New().String())
}

// ParseIdentifier validates a stored identifier.
func ParseIdentifier(s string) (Identifier, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return Identifier(id.String()), nil
}

func (id Identifier) String() string {
	return string(id)
}
