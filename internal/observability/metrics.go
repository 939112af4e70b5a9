package observability

const (
	MUsecaseRequests MetricKey = "usecase_requests_total"
	MUsecaseDuration MetricKey = "usecase_duration_seconds"
	MOrdersCreated   MetricKey = "orders_created_total"
	MRegistrySize    MetricKey = "order_registry_size"
)
