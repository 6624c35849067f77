package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	PostsCreated    prometheus.Counter
	PostsDeleted    prometheus.Counter
	Follows         prometheus.Counter
	Unfollows       prometheus.Counter
	Likes           prometheus.Counter
	Unlikes         prometheus.Counter
	Notifications   prometheus.Counter
}

// New creates the collectors and registers them in reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "murmur_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "murmur_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_posts_created_total",
			Help: "Total number of created posts",
		}),
		PostsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_posts_deleted_total",
			Help: "Total number of deleted posts",
		}),
		Follows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_follows_total",
			Help: "Total number of successful follow requests",
		}),
		Unfollows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_unfollows_total",
			Help: "Total number of successful unfollow requests",
		}),
		Likes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_likes_total",
			Help: "Total number of successful like requests",
		}),
		Unlikes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_unlikes_total",
			Help: "Total number of successful unlike requests",
		}),
		Notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "murmur_notifications_read_total",
			Help: "Total number of mark-as-read requests",
		}),
	}

	reg.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.PostsCreated,
		m.PostsDeleted,
		m.Follows,
		m.Unfollows,
		m.Likes,
		m.Unlikes,
		m.Notifications,
	)

	return m
}

func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
