package utils

import "github.com/google/uuid"

var _ IDGenerator = (*UUIDGenerator)(nil)

// UUIDGenerator issues UUIDv7 strings: record ids, survey tokens and trace
// ids. A failing clock read degrades to UUIDv4.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
