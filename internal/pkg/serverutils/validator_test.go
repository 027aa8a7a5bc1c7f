package serverutils

import (
	"errors"
	"testing"

	"studysnap-be/internal/pkg/apperrors"
)

type sampleRequest struct {
	Name     string   `validate:"required"`
	Keywords []string `validate:"required,min=2"`
	Value    int      `validate:"min=1,max=5"`
}

func TestValidateRequest(t *testing.T) {
	valid := sampleRequest{Name: "x", Keywords: []string{"a", "b"}, Value: 3}
	if err := ValidateRequest(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	invalid := sampleRequest{Keywords: []string{"a"}, Value: 9}
	err := ValidateRequest(invalid)
	if err == nil {
		t.Fatal("invalid request accepted")
	}
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("validation failure must map to BadRequest, got %v", err)
	}
}
