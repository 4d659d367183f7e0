package service

// HealthStatus aggregates the health of the service's collaborators.
type HealthStatus struct {
	Status         string `json:"status"`
	DatabaseStatus string `json:"database_status"`
	RedisStatus    string `json:"redis_status"`
}
