package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter metrics
var (
	// Dashboard render counter by resolved view
	DashboardViewCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_dashboard_views_total",
			Help: "Total number of dashboard renders by view kind",
		},
		[]string{"view"}, // view is "admin", "tenant" or "unassigned"
	)

	// Hotel operation counter
	HotelOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_operations_total",
			Help: "Total number of hotel directory operations",
		},
		[]string{"operation"}, // operation can be "list", "create", "update"
	)

	// Validation failure counter by field
	ValidationFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_validation_failures_total",
			Help: "Total number of hotel form validation failures",
		},
		[]string{"field"},
	)

	// Error counters
	HotelErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_errors_total",
			Help: "Total number of hotel service errors",
		},
		[]string{"type"}, // type can be "not_found", "db_error", "invalid_request" etc.
	)
)

// Histogram metrics
var (
	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hotel_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update"
	)
)

func init() {
	prometheus.MustRegister(DashboardViewCounter)
	prometheus.MustRegister(HotelOperationCounter)
	prometheus.MustRegister(ValidationFailureCounter)
	prometheus.MustRegister(HotelErrorCounter)
	prometheus.MustRegister(DBOperationDuration)
}

// RecordDashboardView increments the dashboard counter for a view kind
func RecordDashboardView(view string) {
	DashboardViewCounter.WithLabelValues(view).Inc()
}

// RecordHotelOperation increments the hotel operation counter
func RecordHotelOperation(operation string) {
	HotelOperationCounter.WithLabelValues(operation).Inc()
}

// RecordValidationFailure increments the validation failure counter for a field
func RecordValidationFailure(field string) {
	ValidationFailureCounter.WithLabelValues(field).Inc()
}

// RecordHotelError increments the error counter for an error type
func RecordHotelError(errorType string) {
	HotelErrorCounter.WithLabelValues(errorType).Inc()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}
