package hud

import (
	"time"

	"github.com/google/uuid"
)

type mockRenderer struct {
	OpenFunc func(id uuid.UUID, status string) Window
}

func (m *mockRenderer) Open(id uuid.UUID, status string) Window {
	return m.OpenFunc(id, status)
}

type mockWindow struct {
	SetStatusFunc func(status string)
	FadeInFunc    func(d time.Duration)
	FadeOutFunc   func(d time.Duration, done func())
	CloseFunc     func()
}

func (m *mockWindow) SetStatus(status string) {
	m.SetStatusFunc(status)
}

func (m *mockWindow) FadeIn(d time.Duration) {
	m.FadeInFunc(d)
}

func (m *mockWindow) FadeOut(d time.Duration, done func()) {
	m.FadeOutFunc(d, done)
}

func (m *mockWindow) Close() {
	m.CloseFunc()
}
