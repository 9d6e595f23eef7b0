package service

import (
	"context"
	"fmt"

	"go-clinic-workflow/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// TokenAllocator derives the human-facing queue token for a new visit:
// the first four characters of the doctor id, a dash, and the doctor's
// current Waiting count plus one.
//
// The count-then-assign read is deliberately not atomic. Two concurrent
// check-ins for the same doctor can mint the same token; that duplicate is a
// display-layer artifact the rest of the workflow tolerates, since visit
// identity rides on the visit id, never the token. Kept as documented legacy
// behavior rather than hardened into a strict sequence.
type TokenAllocator struct {
	log       *logrus.Logger
	visitRepo repository.VisitRepository
}

func NewTokenAllocator(log *logrus.Logger, visitRepo repository.VisitRepository) *TokenAllocator {
	return &TokenAllocator{log: log, visitRepo: visitRepo}
}

// Allocate returns the next token for the doctor's queue.
func (a *TokenAllocator) Allocate(ctx context.Context, doctorID string) (string, error) {
	visits, err := a.visitRepo.LoadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load patient queue: %w", err)
	}

	waiting := 0
	for _, v := range visits {
		if v.DoctorID == doctorID && v.IsWaiting() {
			waiting++
		}
	}

	prefix := doctorID
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	token := fmt.Sprintf("%s-%d", prefix, waiting+1)
	a.log.Debugf("Allocated token %s for doctor %s (waiting=%d)", token, doctorID, waiting)
	return token, nil
}
