package todoform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2024-05-01"))
	assert.Error(t, validateOptionalDate("01.05.2024"))
	assert.Error(t, validateOptionalDate("2024-02-30"))

	assert.NoError(t, validateOptionalTime(""))
	assert.NoError(t, validateOptionalTime("09:30"))
	assert.Error(t, validateOptionalTime("9.30"))
	assert.Error(t, validateOptionalTime("25:00"))

	assert.Error(t, validateRequired("Task")("   "))
	assert.NoError(t, validateRequired("Task")("Call client"))
}

func TestStartCreatePrefillsDate(t *testing.T) {
	m := New(80, 24)
	m.fb.text = "leftover"
	m.StartCreate("2024-05-01")

	require.NotNil(t, m.form)
	assert.Equal(t, "2024-05-01", m.fb.date)
	assert.Empty(t, m.fb.text)
	assert.Contains(t, m.View(), "New To-Do")
}

func TestSubmitTrimsFields(t *testing.T) {
	m := New(80, 24)
	m.StartCreate("")
	m.fb.text = "  Send invoice "
	m.fb.date = "2024-05-02 "
	m.fb.time = " 14:00"

	msg := m.handleSubmit()()

	assert.Equal(t, TodoCreatedMsg{Text: "Send invoice", Date: "2024-05-02", Time: "14:00"}, msg)
}

func TestSubmitPadsTime(t *testing.T) {
	m := New(80, 24)
	m.StartCreate("2024-05-01")
	m.fb.text = "Kickoff"
	m.fb.time = "9:00"

	msg := m.handleSubmit()()

	assert.Equal(t, TodoCreatedMsg{Text: "Kickoff", Date: "2024-05-01", Time: "09:00"}, msg)
}

func TestUpdateWithoutFormIsNoop(t *testing.T) {
	m := New(80, 24)
	_, cmd := m.Update(nil)
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())
}
