package otelhttpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/goto/discuss/pkg/opentelemetry/otelhttpclient"

// HTTPTransport records a span, a request counter and a latency histogram
// for each round trip
type HTTPTransport struct {
	roundTripper http.RoundTripper
	name         string

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func NewHTTPTransport(baseTransport http.RoundTripper, name string) *HTTPTransport {
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}

	meter := otel.Meter(instrumentationName)
	requests, err := meter.Int64Counter("http.client.requests",
		metric.WithDescription("number of outbound http requests"))
	if err != nil {
		otel.Handle(err)
	}
	duration, err := meter.Float64Histogram("http.client.duration",
		metric.WithDescription("duration of outbound http requests"),
		metric.WithUnit("ms"))
	if err != nil {
		otel.Handle(err)
	}

	return &HTTPTransport{
		roundTripper: baseTransport,
		name:         name,
		tracer:       otel.Tracer(instrumentationName),
		requests:     requests,
		duration:     duration,
	}
}

func (tr *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := tr.tracer.Start(req.Context(), tr.name+" "+req.Method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("http.client", tr.name),
		attribute.String("http.method", req.Method),
		attribute.String("http.host", req.URL.Host),
	}

	startAt := time.Now()
	resp, err := tr.roundTripper.RoundTrip(req.WithContext(ctx))
	elapsed := float64(time.Since(startAt).Microseconds()) / 1000

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		attrs = append(attrs, attribute.Bool("http.error", true))
	} else {
		attrs = append(attrs, attribute.Int("http.status_code", resp.StatusCode))
		if resp.StatusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, resp.Status)
		}
	}
	span.SetAttributes(attrs...)

	if tr.requests != nil {
		tr.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	if tr.duration != nil {
		tr.duration.Record(ctx, elapsed, metric.WithAttributes(attrs...))
	}

	return resp, err
}

// New returns a client named name whose round trips over base are traced.
// A nil base falls back to http.DefaultTransport.
func New(name string, timeout time.Duration, base http.RoundTripper) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewHTTPTransport(base, name),
	}
}
