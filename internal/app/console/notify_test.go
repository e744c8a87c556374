package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestTerminalNotifier(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf)

	n.Notify(success("Версия создана."))
	n.Notify(failure("duplicate version"))

	assert.Equal(t, "✓ Успешно: Версия создана.\n✗ Ошибка: duplicate version\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(success("a"))
	r.Notify(failure("b"))

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", last.Description)

	assert.Len(t, r.Drain(), 2)
	assert.Empty(t, r.Drain())
}
