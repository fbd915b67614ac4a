package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// Regenerate after changing any service interface:
//   go generate ./internal/services/service_mocks
