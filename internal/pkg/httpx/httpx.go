package httpx

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

func IsRetryableHTTPStatus(code int) bool {
	if code == 408 || code == 429 {
		return true
	}
	return code >= 500 && code <= 599
}

func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() || netErr.Temporary() {
			return true
		}
	}
	var sc HTTPStatusCoder
	if errors.As(err, &sc) {
		return IsRetryableHTTPStatus(sc.HTTPStatusCode())
	}
	return false
}

// BackoffDelay returns how long to sleep before retry number attempt
// (0-based). A Retry-After header on resp overrides the exponential base;
// the result is jittered +/-20% and clamped to max.
func BackoffDelay(resp *http.Response, attempt int, base, max time.Duration) time.Duration {
	delay := base << attempt
	if resp != nil {
		if ra := strings.TrimSpace(resp.Header.Get("Retry-After")); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
				delay = time.Duration(secs) * time.Second
			}
		}
	}
	if max > 0 && delay > max {
		delay = max
	}
	if delay <= 0 {
		return 0
	}
	spread := 0.2 * delay.Seconds()
	low := delay.Seconds() - spread
	if low < 0 {
		low = 0
	}
	v := low + rand.Float64()*2*spread
	return time.Duration(v * float64(time.Second))
}
