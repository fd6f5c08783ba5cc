// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commit_test
//

// Package commit_test is a generated GoMock package.
package commit_test

import (
	context "context"
	entities "podservice/internal/entities"
	logger "podservice/pkg/logger"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockhandlerLogger is a mock of handlerLogger interface.
type MockhandlerLogger struct {
	ctrl     *gomock.Controller
	recorder *MockhandlerLoggerMockRecorder
	isgomock struct{}
}

// MockhandlerLoggerMockRecorder is the mock recorder for MockhandlerLogger.
type MockhandlerLoggerMockRecorder struct {
	mock *MockhandlerLogger
}

// NewMockhandlerLogger creates a new mock instance.
func NewMockhandlerLogger(ctrl *gomock.Controller) *MockhandlerLogger {
	mock := &MockhandlerLogger{ctrl: ctrl}
	mock.recorder = &MockhandlerLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockhandlerLogger) EXPECT() *MockhandlerLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockhandlerLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockhandlerLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockhandlerLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MockhandlerLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockhandlerLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockhandlerLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MockhandlerLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockhandlerLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockhandlerLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MockhandlerLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MockhandlerLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MockhandlerLogger)(nil).With), fields...)
}

// MockBlobStore is a mock of BlobStore interface.
type MockBlobStore struct {
	ctrl     *gomock.Controller
	recorder *MockBlobStoreMockRecorder
	isgomock struct{}
}

// MockBlobStoreMockRecorder is the mock recorder for MockBlobStore.
type MockBlobStoreMockRecorder struct {
	mock *MockBlobStore
}

// NewMockBlobStore creates a new mock instance.
func NewMockBlobStore(ctrl *gomock.Controller) *MockBlobStore {
	mock := &MockBlobStore{ctrl: ctrl}
	mock.recorder = &MockBlobStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlobStore) EXPECT() *MockBlobStoreMockRecorder {
	return m.recorder
}

// PublicURL mocks base method.
func (m *MockBlobStore) PublicURL(key string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublicURL", key)
	ret0, _ := ret[0].(string)
	return ret0
}

// PublicURL indicates an expected call of PublicURL.
func (mr *MockBlobStoreMockRecorder) PublicURL(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublicURL", reflect.TypeOf((*MockBlobStore)(nil).PublicURL), key)
}

// Put mocks base method.
func (m *MockBlobStore) Put(ctx context.Context, key string, data []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", ctx, key, data)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockBlobStoreMockRecorder) Put(ctx, key, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockBlobStore)(nil).Put), ctx, key, data)
}

// MockRecordStore is a mock of RecordStore interface.
type MockRecordStore struct {
	ctrl     *gomock.Controller
	recorder *MockRecordStoreMockRecorder
	isgomock struct{}
}

// MockRecordStoreMockRecorder is the mock recorder for MockRecordStore.
type MockRecordStoreMockRecorder struct {
	mock *MockRecordStore
}

// NewMockRecordStore creates a new mock instance.
func NewMockRecordStore(ctrl *gomock.Controller) *MockRecordStore {
	mock := &MockRecordStore{ctrl: ctrl}
	mock.recorder = &MockRecordStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecordStore) EXPECT() *MockRecordStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRecordStore) Create(ctx context.Context, recordModify entities.DeliveryRecordModify) (*entities.DeliveryRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, recordModify)
	ret0, _ := ret[0].(*entities.DeliveryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRecordStoreMockRecorder) Create(ctx, recordModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRecordStore)(nil).Create), ctx, recordModify)
}

// MockKeyFactory is a mock of KeyFactory interface.
type MockKeyFactory struct {
	ctrl     *gomock.Controller
	recorder *MockKeyFactoryMockRecorder
	isgomock struct{}
}

// MockKeyFactoryMockRecorder is the mock recorder for MockKeyFactory.
type MockKeyFactoryMockRecorder struct {
	mock *MockKeyFactory
}

// NewMockKeyFactory creates a new mock instance.
func NewMockKeyFactory(ctrl *gomock.Controller) *MockKeyFactory {
	mock := &MockKeyFactory{ctrl: ctrl}
	mock.recorder = &MockKeyFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKeyFactory) EXPECT() *MockKeyFactoryMockRecorder {
	return m.recorder
}

// MediaKey mocks base method.
func (m *MockKeyFactory) MediaKey(awbNumber, filename string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MediaKey", awbNumber, filename)
	ret0, _ := ret[0].(string)
	return ret0
}

// MediaKey indicates an expected call of MediaKey.
func (mr *MockKeyFactoryMockRecorder) MediaKey(awbNumber, filename any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MediaKey", reflect.TypeOf((*MockKeyFactory)(nil).MediaKey), awbNumber, filename)
}

// MockEventPublisher is a mock of EventPublisher interface.
type MockEventPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockEventPublisherMockRecorder
	isgomock struct{}
}

// MockEventPublisherMockRecorder is the mock recorder for MockEventPublisher.
type MockEventPublisherMockRecorder struct {
	mock *MockEventPublisher
}

// NewMockEventPublisher creates a new mock instance.
func NewMockEventPublisher(ctrl *gomock.Controller) *MockEventPublisher {
	mock := &MockEventPublisher{ctrl: ctrl}
	mock.recorder = &MockEventPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherMockRecorder {
	return m.recorder
}

// DeliveryCommitted mocks base method.
func (m *MockEventPublisher) DeliveryCommitted(ctx context.Context, record *entities.DeliveryRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeliveryCommitted", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeliveryCommitted indicates an expected call of DeliveryCommitted.
func (mr *MockEventPublisherMockRecorder) DeliveryCommitted(ctx, record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeliveryCommitted", reflect.TypeOf((*MockEventPublisher)(nil).DeliveryCommitted), ctx, record)
}
