package mocks

import "github.com/shiroemons/go-fcomp/internal/fcomp/models"

// MockPrompter はテスト用の対話入力モック
type MockPrompter struct {
	Job   models.Job
	Error error
	Calls int
}

// Prompt は設定された Job を返します
func (m *MockPrompter) Prompt() (models.Job, error) {
	m.Calls++
	return m.Job, m.Error
}
