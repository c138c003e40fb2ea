package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare json",
			input: `{"score": 80}`,
			want:  `{"score": 80}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"score\": 80}\n```",
			want:  `{"score": 80}`,
		},
		{
			name:  "plain fence",
			input: "```\n{\"score\": 80}\n```",
			want:  `{"score": 80}`,
		},
		{
			name:  "surrounding prose",
			input: "Here is the evaluation:\n{\"score\": 80}\nLet me know if you need more.",
			want:  `{"score": 80}`,
		},
		{
			name:  "fence and prose",
			input: "Sure!\n```json\n{\"score\": 80}\n```",
			want:  `{"score": 80}`,
		},
		{
			name:  "no json at all",
			input: "I cannot evaluate this project.",
			want:  "I cannot evaluate this project.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}

func TestCleanJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare array",
			input: `[{"index": 0}]`,
			want:  `[{"index": 0}]`,
		},
		{
			name:  "fenced array with prose",
			input: "The ranking:\n```json\n[{\"index\": 0}, {\"index\": 1}]\n```",
			want:  `[{"index": 0}, {"index": 1}]`,
		},
		{
			name:  "nested arrays keep outermost",
			input: `[[1, 2], [3]]`,
			want:  `[[1, 2], [3]]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONArray(tt.input))
		})
	}
}

func TestUnconfiguredClientFailsFast(t *testing.T) {
	client := NewClient("", "gemini-2.0-flash")
	assert.False(t, client.Configured())

	_, err := client.EvaluateProject(context.Background(), "a project", "https://github.com/x/y")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.RankProjects(context.Background(), []RankEntry{{GithubLink: "https://github.com/x/y"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
