package constant

import (
	"time"
)

const (
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession contextKey = "session"
)

const (
	UserTypeEmployee = "employee"
	UserTypeCustomer = "customer"
)

const (
	PositionManager      = "Manager"
	PositionHousekeeper  = "Housekeeper"
	PositionReceptionist = "Receptionist"
)

const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"

	RentalStatusOngoing   = "Ongoing"
	RentalStatusCompleted = "Completed"

	PaymentMethodPending = "Pending"
)

const (
	RequestParamPage  = "page"
	RequestParamLimit = "limit"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
	DateOnly   = time.DateOnly
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderLocation           = "Location"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormImage                    = "image"
)

const (
	PathHealth         = "/health"
	PathSwagger        = "/swagger/*"
	PathLogin          = "/auth/login"
	PathRefreshToken   = "/auth/refresh-token"
	PathDashboard      = "/employee/dashboard"
	PathConvertBooking = "/employee/convert-booking"
	PathRentRoom       = "/employee/rent-room"
	PathCustomers      = "/employee/customers"
	PathEmployees      = "/employee/employees"
	PathHotels         = "/employee/hotels"
	PathRooms          = "/employee/rooms"

	PathAdd    = "/add"
	PathEdit   = "/edit/{id}"
	PathDelete = "/delete/{id}"
)

// Cache key prefixes per domain. Rooms and employees cache the joined hotel
// name, so hotel writes clear their prefixes too.
const (
	CachePrefixCustomer = "customer:"
	CachePrefixEmployee = "employee:"
	CachePrefixHotel    = "hotel:"
	CachePrefixRoom     = "room:"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "internal server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
