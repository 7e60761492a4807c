package table_test

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	table "github.com/grindlemire/go-table"
)

// grid is the data type the mocked lines are instantiated for.
type grid struct {
	Cells [][]string
	Hits  int
}

// MockLine is a mock of table.Line[grid].
type MockLine struct {
	ctrl     *gomock.Controller
	recorder *MockLineMockRecorder
}

// MockLineMockRecorder is the mock recorder for MockLine.
type MockLineMockRecorder struct {
	mock *MockLine
}

// NewMockLine creates a new mock instance.
func NewMockLine(ctrl *gomock.Controller) *MockLine {
	mock := &MockLine{ctrl: ctrl}
	mock.recorder = &MockLineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLine) EXPECT() *MockLineMockRecorder {
	return m.recorder
}

// Arrange mocks base method.
func (m *MockLine) Arrange(a *table.Arrangement, data grid, line int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Arrange", a, data, line)
}

// Arrange indicates an expected call of Arrange.
func (mr *MockLineMockRecorder) Arrange(a, data, line interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Arrange", reflect.TypeOf((*MockLine)(nil).Arrange), a, data, line)
}

// ElementCount mocks base method.
func (m *MockLine) ElementCount(data grid) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ElementCount", data)
	ret0, _ := ret[0].(int)
	return ret0
}

// ElementCount indicates an expected call of ElementCount.
func (mr *MockLineMockRecorder) ElementCount(data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ElementCount", reflect.TypeOf((*MockLine)(nil).ElementCount), data)
}

// Event mocks base method.
func (m *MockLine) Event(ev table.Event, data *grid) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Event", ev, data)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Event indicates an expected call of Event.
func (mr *MockLineMockRecorder) Event(ev, data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Event", reflect.TypeOf((*MockLine)(nil).Event), ev, data)
}

// Measure mocks base method.
func (m *MockLine) Measure(ms *table.Measurement, data grid, line int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Measure", ms, data, line)
}

// Measure indicates an expected call of Measure.
func (mr *MockLineMockRecorder) Measure(ms, data, line interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Measure", reflect.TypeOf((*MockLine)(nil).Measure), ms, data, line)
}

// Paint mocks base method.
func (m *MockLine) Paint(s table.Surface, data grid, line int, elements table.Span) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Paint", s, data, line, elements)
}

// Paint indicates an expected call of Paint.
func (mr *MockLineMockRecorder) Paint(s, data, line, elements interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Paint", reflect.TypeOf((*MockLine)(nil).Paint), s, data, line, elements)
}

// Update mocks base method.
func (m *MockLine) Update(data grid) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Update", data)
}

// Update indicates an expected call of Update.
func (mr *MockLineMockRecorder) Update(data interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockLine)(nil).Update), data)
}
