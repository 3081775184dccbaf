package repository

import (
	"context"

	"phone-assistant/internal/phone"
)

// Repository is the composed interface for the phone catalog data store.
type Repository interface {
	PhoneRepository
}

// PhoneRepository defines all data access methods for the Phone entity.
type PhoneRepository interface {
	// GetOnePhone returns a zero-value Phone (ID == 0) when nothing matches.
	GetOnePhone(ctx context.Context, opt GetOnePhoneOptions) (phone.Phone, error)
	ListPhones(ctx context.Context, opt ListPhonesOptions) ([]phone.Phone, error)
	UpsertPhones(ctx context.Context, phones []phone.Phone) (int, error)
	CountPhones(ctx context.Context) (int, error)
}
