package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		token  string
		want   Status
		wantOK bool
	}{
		{token: " ", want: StatusOpen, wantOK: true},
		{token: "x", want: StatusDone, wantOK: true},
		{token: "X", wantOK: false},
		{token: "y", wantOK: false},
		{token: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseStatus(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStatusToggledIsInvolutive(t *testing.T) {
	assert.Equal(t, StatusDone, StatusOpen.Toggled())
	assert.Equal(t, StatusOpen, StatusDone.Toggled())
	assert.Equal(t, StatusOpen, StatusOpen.Toggled().Toggled())
}

func TestTodoItemAccessors(t *testing.T) {
	item := TodoItem{File: "/wiki/Projects.wiki", Offset: 4, Status: StatusDone, Text: "ship it"}

	assert.Equal(t, 5, item.Line())
	assert.True(t, item.Done())
	assert.Equal(t, "[x]", item.Glyph())
	assert.Equal(t, "/wiki/Projects.wiki:4", item.Key())
	assert.Equal(t, "done", item.Status.String())
	assert.Equal(t, "[ ]", StatusOpen.Glyph())
}
