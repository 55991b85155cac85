package entity

import (
	"github.com/google/uuid"
)

// Section is a named, reusable group of questions. The title is the external
// addressable key: it must be unique across the catalog because branch answers
// reference sections by title.
type Section struct {
	Id    uuid.UUID
	Title string
}
