package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "balagh_http_request_duration_seconds",
	Help:    "Duration of HTTP requests",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

var UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "balagh_uploads_total",
	Help: "Number of media uploads by result",
}, []string{"result"})

var UploadRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "balagh_upload_rejections_total",
	Help: "Number of staged files rejected",
}, []string{"reason"})

var DashboardRecomputations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "balagh_dashboard_recomputations_total",
	Help: "Number of dashboard recomputations by trigger",
}, []string{"trigger"})

var SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "balagh_submissions_total",
	Help: "Number of report submissions",
}, []string{"anonymous", "result"})

var ChangeFeedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "balagh_change_feed_events_total",
	Help: "Number of change-feed notifications received",
}, []string{"topic"})

var WebsocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "balagh_websocket_connections",
	Help: "Number of open websocket connections",
})

var AuthOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "balagh_auth_operations_total",
	Help: "Number of auth operations by kind and result",
}, []string{"op", "result"})
