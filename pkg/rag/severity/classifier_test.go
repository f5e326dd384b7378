package severity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mind-nest-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

func (m *mockLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  Level
	}{
		{name: "low", reply: "LOW", want: Low},
		{name: "crisis with whitespace", reply: " crisis \n", want: Crisis},
		{name: "invalid label", reply: "UNSURE", want: Moderate},
		{name: "multiple tokens", reply: "HIGH or CRISIS", want: Moderate},
		{name: "empty reply", reply: "", want: Moderate},
		{name: "call failure", err: errors.New("rate limited"), want: Moderate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockLLM{}
			provider.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
				return strings.Contains(prompt, `Message: "I feel stressed"`)
			})).Return(tt.reply, tt.err)

			c := NewClassifier(provider, nil)
			assert.Equal(t, tt.want, c.Classify(context.Background(), "I feel stressed"))
			provider.AssertExpectations(t)
		})
	}
}

func TestClassifyTimeout(t *testing.T) {
	provider := &mockLLM{}
	provider.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return("", context.DeadlineExceeded)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	c := NewClassifier(provider, nil)
	assert.Equal(t, Moderate, c.Classify(ctx, "hello"))
}
