package storage

import (
	"context"
	"testing"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExchange(t *testing.T) {
	tests := []struct {
		mutate  func(*model.Exchange)
		wantErr error
		name    string
	}{
		{name: "valid", mutate: func(*model.Exchange) {}},
		{name: "empty query is allowed", mutate: func(e *model.Exchange) { e.Query = "" }},
		{name: "missing ID", mutate: func(e *model.Exchange) { e.ID = " " }, wantErr: ErrInvalidExchange},
		{name: "missing conversation", mutate: func(e *model.Exchange) { e.ConversationID = "" }, wantErr: ErrInvalidExchange},
		{name: "missing content", mutate: func(e *model.Exchange) { e.Response.Content = "" }, wantErr: ErrInvalidExchange},
		{name: "unknown category", mutate: func(e *model.Exchange) { e.Response.Category = "crypto" }, wantErr: ErrInvalidExchange},
		{
			name: "clarification without category",
			mutate: func(e *model.Exchange) {
				e.Response.Category = ""
				e.Response.NeedsClarification = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := makeExchange("conv", 1, model.CategoryGeneral)
			tt.mutate(ex)

			err := validateExchange(ex)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, validateExchange(nil), ErrNilParameter)
}

func TestSaveExchange_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	//nolint:staticcheck // nil context is the case under test
	err := store.SaveExchange(nil, makeExchange("conv", 1, model.CategoryGeneral))
	assert.ErrorIs(t, err, ErrNilContext)

	err = store.SaveExchange(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilParameter)
}
