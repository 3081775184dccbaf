package usecase

import (
	"context"
	"strings"

	"phone-assistant/internal/phone"
	repo "phone-assistant/internal/phone/repository"
)

// Details returns the best catalog match for a (partial, case-insensitive) phone name.
func (uc *implUseCase) Details(ctx context.Context, name string) (phone.Phone, error) {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < 2 {
		return phone.Phone{}, phone.ErrInvalidName
	}

	p, err := uc.repo.GetOnePhone(ctx, repo.GetOnePhoneOptions{NameContains: trimmed})
	if err != nil {
		uc.l.Errorf(ctx, "phone.usecase.Details GetOnePhone: %v", err)
		return phone.Phone{}, phone.ErrLookupFailed
	}
	if p.ID == 0 {
		return phone.Phone{}, &phone.NotFoundError{Name: name}
	}
	return p, nil
}

// Compare looks up both phones and reports the first one that fails.
func (uc *implUseCase) Compare(ctx context.Context, nameA, nameB string) (phone.Comparison, error) {
	p1, err := uc.Details(ctx, nameA)
	if err != nil {
		return phone.Comparison{}, &phone.CompareError{Position: 1, Err: err}
	}
	p2, err := uc.Details(ctx, nameB)
	if err != nil {
		return phone.Comparison{}, &phone.CompareError{Position: 2, Err: err}
	}
	return phone.Comparison{Phone1: p1, Phone2: p2}, nil
}
