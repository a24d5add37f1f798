package observability

const ServiceName = "fieldtrack-backend"
