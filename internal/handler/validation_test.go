package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name      string
		req       TaskRequest
		wantField string
	}{
		{
			name:      "missing title",
			req:       TaskRequest{},
			wantField: "title",
		},
		{
			name:      "empty title",
			req:       TaskRequest{Title: ptr("")},
			wantField: "title",
		},
		{
			name:      "title too long",
			req:       TaskRequest{Title: ptr(strings.Repeat("a", 256))},
			wantField: "title",
		},
		{
			name: "title at max length",
			req:  TaskRequest{Title: ptr(strings.Repeat("a", 255))},
		},
		{
			name: "multibyte title counted in characters",
			req:  TaskRequest{Title: ptr(strings.Repeat("я", 255))},
		},
		{
			name: "valid with all fields",
			req: TaskRequest{
				Title:       ptr("Write report"),
				Description: ptr("quarterly numbers"),
				Completed:   ptr(true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateCreate(tt.req)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	tests := []struct {
		name      string
		req       TaskRequest
		wantField string
	}{
		{
			// Пустой патч валиден: ни одно поле не заменяется
			name: "no fields",
			req:  TaskRequest{},
		},
		{
			name: "only completed",
			req:  TaskRequest{Completed: ptr(true)},
		},
		{
			name:      "empty title",
			req:       TaskRequest{Title: ptr("")},
			wantField: "title",
		},
		{
			name:      "title too long",
			req:       TaskRequest{Title: ptr(strings.Repeat("a", 256))},
			wantField: "title",
		},
		{
			name: "title at max length",
			req:  TaskRequest{Title: ptr(strings.Repeat("a", 255))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validatePatch(tt.req)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
