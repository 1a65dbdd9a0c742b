package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal uint
		action    Action
		owner     uint
		want      error
	}{
		{"unauthenticated create", 0, ActionCreate, 0, ErrNotAuthenticated},
		{"unauthenticated update", 0, ActionUpdate, 1, ErrNotAuthenticated},
		{"unauthenticated delete", 0, ActionDelete, 1, ErrNotAuthenticated},
		{"any user may create", 3, ActionCreate, 0, nil},
		{"owner may update", 1, ActionUpdate, 1, nil},
		{"owner may delete", 1, ActionDelete, 1, nil},
		{"non-owner update", 2, ActionUpdate, 1, ErrNotAuthorized},
		{"non-owner delete", 2, ActionDelete, 1, ErrNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.action, tt.owner)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestAuthorizeRejectsEveryNonOwner(t *testing.T) {
	for principal := uint(1); principal <= 5; principal++ {
		for owner := uint(1); owner <= 5; owner++ {
			err := Authorize(principal, ActionUpdate, owner)
			if principal == owner {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotAuthorized)
			}
		}
	}
}
