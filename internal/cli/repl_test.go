package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAsker struct {
	err     error
	noReply bool
	queries []string
}

func (f *fakeAsker) Ask(_ context.Context, query string) (*model.Exchange, error) {
	f.queries = append(f.queries, query)
	if f.noReply {
		return nil, f.err
	}
	return &model.Exchange{
		Query: query,
		Response: model.AssistantResponse{
			Content:  "answer to " + query,
			Category: model.CategoryGeneral,
		},
	}, f.err
}

func newTestREPL(t *testing.T, asker Asker, input string) (*REPL, *bytes.Buffer) {
	t.Helper()
	renderer, err := NewRenderer(WithPlain())
	require.NoError(t, err)
	var out bytes.Buffer
	return NewREPL(asker, strings.NewReader(input), &out, renderer), &out
}

func TestREPL_Run(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		queries  []string
		answered int
	}{
		{
			name:     "answers until EOF",
			input:    "budget tips\nwhat is a SIP\n",
			queries:  []string{"budget tips", "what is a SIP"},
			answered: 2,
		},
		{
			name:     "skips blank lines",
			input:    "\n   \nsavings\n",
			queries:  []string{"savings"},
			answered: 1,
		},
		{
			name:     "stops at exit",
			input:    "tax saving\nexit\nnever asked\n",
			queries:  []string{"tax saving"},
			answered: 1,
		},
		{
			name:     "empty input",
			input:    "",
			answered: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asker := &fakeAsker{}
			repl, out := newTestREPL(t, asker, tt.input)

			answered, err := repl.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.answered, answered)
			assert.Equal(t, tt.queries, asker.queries)
			for _, q := range tt.queries {
				assert.Contains(t, out.String(), "answer to "+q)
			}
		})
	}
}

func TestREPL_HistoryFailureIsWarning(t *testing.T) {
	asker := &fakeAsker{err: common.NewUserError("Could not save this exchange to history.", errors.New("disk full"))}
	repl, out := newTestREPL(t, asker, "budget\n")

	answered, err := repl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, answered)
	assert.Contains(t, out.String(), "Could not save this exchange to history.")
	assert.Contains(t, out.String(), "answer to budget")
}

func TestREPL_AskFailure(t *testing.T) {
	asker := &fakeAsker{err: errors.New("boom"), noReply: true}
	repl, _ := newTestREPL(t, asker, "budget\n")

	_, err := repl.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsExitCommand(t *testing.T) {
	for _, line := range []string{"exit", "QUIT", " bye ", ":q"} {
		assert.True(t, IsExitCommand(line), line)
	}
	for _, line := range []string{"", "exit plan for stocks", "quitting smoking saves money"} {
		assert.False(t, IsExitCommand(line), line)
	}
}
